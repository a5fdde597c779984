package kube

import (
	"path/filepath"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"

	"github.com/cloudjanitor/cloudjanitor/internal/errdefs"
)

// Client audits workloads in a single cluster
type Client struct {
	clientset kubernetes.Interface
}

// DefaultKubeconfigPath returns the conventional kubeconfig location,
// or empty when the home directory cannot be resolved.
func DefaultKubeconfigPath() string {
	if home := homedir.HomeDir(); home != "" {
		return filepath.Join(home, ".kube", "config")
	}
	return ""
}

// NewClient creates a cluster client from a kubeconfig file. A missing or
// unparsable kubeconfig is reported as a distinct cluster-config error.
func NewClient(kubeconfig string) (*Client, error) {
	config, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, errdefs.ClusterConfigMissing("loading kubeconfig", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, errdefs.Unexpected("creating kubernetes client", err)
	}

	return &Client{clientset: clientset}, nil
}

// NewClientFromInterface creates a Client over an existing clientset
func NewClientFromInterface(clientset kubernetes.Interface) *Client {
	return &Client{clientset: clientset}
}
