package models

// Reasons a container gets flagged as running with root privilege
const (
	ReasonNoSecurityContext = "no security context"
	ReasonRunsAsRoot        = "runAsUser=0"
)

// WorkloadInfo represents a pod flagged for running as root.
// ContainerName is the first container in declaration order that
// triggered the flag; a pod appears at most once.
type WorkloadInfo struct {
	Namespace     string `json:"namespace"`
	PodName       string `json:"podName"`
	ContainerName string `json:"containerName"`
	Reason        string `json:"reason"`
}
