// Package errdefs defines the closed error taxonomy for audit commands.
// Every error that reaches a command boundary is one of these kinds, and
// each kind maps to a distinct process exit code so the tool stays usable
// from scripts.
package errdefs

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Kind identifies a member of the error taxonomy.
type Kind int

const (
	KindUnexpected Kind = iota
	KindCredentialsMissing
	KindProviderClient
	KindClusterConfigMissing
)

// Exit codes, one per taxonomy member. Success (including empty results)
// is always 0.
const (
	ExitOK                   = 0
	ExitUnexpected           = 1
	ExitCredentialsMissing   = 2
	ExitProviderClient       = 3
	ExitClusterConfigMissing = 4
)

// AuditError wraps a failure with its taxonomy kind and the operation
// that produced it.
type AuditError struct {
	Kind Kind
	Op   string
	Hint string
	Err  error
}

func (e *AuditError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AuditError) Unwrap() error {
	return e.Err
}

// CredentialsMissing marks a failure to resolve cloud credentials.
func CredentialsMissing(op string, err error) error {
	return &AuditError{
		Kind: KindCredentialsMissing,
		Op:   op,
		Hint: "Configure AWS credentials (e.g. via AWS_PROFILE or ~/.aws/credentials).",
		Err:  err,
	}
}

// ProviderClient marks a provider-side client error. The provider message
// is preserved via the wrapped error.
func ProviderClient(op string, err error) error {
	return &AuditError{Kind: KindProviderClient, Op: op, Err: err}
}

// ClusterConfigMissing marks an unavailable or unparsable kubeconfig.
func ClusterConfigMissing(op string, err error) error {
	return &AuditError{
		Kind: KindClusterConfigMissing,
		Op:   op,
		Hint: "Ensure a valid kubeconfig exists (e.g. ~/.kube/config) or pass --kubeconfig.",
		Err:  err,
	}
}

// Unexpected marks any failure outside the closed taxonomy.
func Unexpected(op string, err error) error {
	return &AuditError{Kind: KindUnexpected, Op: op, Err: err}
}

// ClassifyAWS wraps an error returned by an AWS API call. Anything the SDK
// reports as an API error (invalid region, throttling, permission denial)
// is a provider client error; the rest is unexpected.
func ClassifyAWS(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return ProviderClient(op, err)
	}
	return Unexpected(op, err)
}

// KindOf returns the taxonomy kind of err. Errors outside the taxonomy
// are unexpected.
func KindOf(err error) Kind {
	var auditErr *AuditError
	if errors.As(err, &auditErr) {
		return auditErr.Kind
	}
	return KindUnexpected
}

// HintOf returns the remediation hint attached to err, if any.
func HintOf(err error) string {
	var auditErr *AuditError
	if errors.As(err, &auditErr) {
		return auditErr.Hint
	}
	return ""
}

// ExitCode maps err to its process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case KindCredentialsMissing:
		return ExitCredentialsMissing
	case KindProviderClient:
		return ExitProviderClient
	case KindClusterConfigMissing:
		return ExitClusterConfigMissing
	default:
		return ExitUnexpected
	}
}
