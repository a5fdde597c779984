package kube

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/cloudjanitor/cloudjanitor/internal/errdefs"
	"github.com/cloudjanitor/cloudjanitor/internal/models"
)

// GetRootWorkloads lists pods across all namespaces and returns one entry
// per pod whose containers include at least one running with root
// privilege. Single unwatched list call, no retries.
func (c *Client) GetRootWorkloads(ctx context.Context) ([]models.WorkloadInfo, error) {
	pods, err := c.clientset.CoreV1().Pods(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errdefs.Unexpected("listing pods", err)
	}

	workloads := []models.WorkloadInfo{}
	for _, pod := range pods.Items {
		name, reason, flagged := findRootContainer(pod.Spec.Containers)
		if !flagged {
			continue
		}

		workloads = append(workloads, models.WorkloadInfo{
			Namespace:     pod.Namespace,
			PodName:       pod.Name,
			ContainerName: name,
			Reason:        reason,
		})
	}

	return workloads, nil
}

// findRootContainer scans containers in declaration order and returns the
// first one considered to run as root: either no security context at all,
// or an explicit runAsUser of 0. A security context with no runAsUser set
// is not flagged.
func findRootContainer(containers []corev1.Container) (name string, reason string, flagged bool) {
	for _, container := range containers {
		sc := container.SecurityContext
		if sc == nil {
			return container.Name, models.ReasonNoSecurityContext, true
		}
		if sc.RunAsUser != nil && *sc.RunAsUser == 0 {
			return container.Name, models.ReasonRunsAsRoot, true
		}
	}
	return "", "", false
}
