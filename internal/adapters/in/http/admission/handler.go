// Package admission implements the Kubernetes admission webhook adapter.
package admission

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	admissionv1 "k8s.io/api/admission/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/bnema/kestrel/internal/adapters/dto"
	"github.com/bnema/kestrel/internal/boundaries/in"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

// maxReviewSize bounds an AdmissionReview body.
const maxReviewSize = 3 * 1024 * 1024

// DecisionObserver records admission decisions, e.g. as metrics.
type DecisionObserver interface {
	ObserveAdmission(webhook string, decision domain.Decision)
}

// Handler serves the validating and mutating webhooks.
type Handler struct {
	admissionSvc in.AdmissionService
	observer     DecisionObserver
	log          logging.Logger
}

// NewHandler creates the webhook handler. observer may be nil.
func NewHandler(admissionSvc in.AdmissionService, observer DecisionObserver, log logging.Logger) *Handler {
	return &Handler{
		admissionSvc: admissionSvc,
		observer:     observer,
		log:          log,
	}
}

// RegisterRoutes registers the webhook routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /validate-image", h.handleValidate)
	mux.HandleFunc("POST /mutate-image", h.handleMutate)
}

// container is one image slot of a Pod with its JSON pointer.
type container struct {
	path  string
	image string
}

// podContainers lists every container image of the pod, init and ephemeral
// containers included.
func podContainers(pod *corev1.Pod) []container {
	var out []container
	for i, c := range pod.Spec.InitContainers {
		out = append(out, container{fmt.Sprintf("/spec/initContainers/%d/image", i), c.Image})
	}
	for i, c := range pod.Spec.Containers {
		out = append(out, container{fmt.Sprintf("/spec/containers/%d/image", i), c.Image})
	}
	for i, c := range pod.Spec.EphemeralContainers {
		out = append(out, container{fmt.Sprintf("/spec/ephemeralContainers/%d/image", i), c.Image})
	}
	return out
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	h.serveReview(w, r, "validate", func(pod *corev1.Pod, resp *admissionv1.AdmissionResponse) error {
		var denied []string
		for _, c := range podContainers(pod) {
			result := h.admissionSvc.Decide(r.Context(), c.image)
			h.observe("validate", result.Decision)
			if !result.Allowed() {
				denied = append(denied, fmt.Sprintf("%s: %s", c.image, result.Reason))
			}
		}

		resp.Allowed = len(denied) == 0
		if !resp.Allowed {
			resp.Result = &metav1.Status{
				Status:  metav1.StatusFailure,
				Code:    http.StatusForbidden,
				Reason:  metav1.StatusReasonForbidden,
				Message: "image not allowed: " + strings.Join(denied, "; "),
			}
		}
		return nil
	})
}

// patchOp is one RFC 6902 operation.
type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value string `json:"value"`
}

func (h *Handler) handleMutate(w http.ResponseWriter, r *http.Request) {
	h.serveReview(w, r, "mutate", func(pod *corev1.Pod, resp *admissionv1.AdmissionResponse) error {
		var ops []patchOp
		for _, c := range podContainers(pod) {
			rewritten, changed := h.admissionSvc.Mutate(r.Context(), c.image)
			if changed {
				ops = append(ops, patchOp{Op: "replace", Path: c.path, Value: rewritten})
			}
		}

		resp.Allowed = true
		if len(ops) == 0 {
			return nil
		}
		patch, err := json.Marshal(ops)
		if err != nil {
			return fmt.Errorf("failed to encode patch: %w", err)
		}
		patchType := admissionv1.PatchTypeJSONPatch
		resp.Patch = patch
		resp.PatchType = &patchType
		return nil
	})
}

// serveReview decodes an AdmissionReview, hands Pod requests to review and
// writes the response review. Requests for other kinds are admitted
// unchanged.
func (h *Handler) serveReview(
	w http.ResponseWriter,
	r *http.Request,
	webhook string,
	review func(pod *corev1.Pod, resp *admissionv1.AdmissionResponse) error,
) {
	ctx := logging.CtxWithFields(r.Context(), map[string]any{
		logging.FieldLayer:   "adapter",
		logging.FieldAdapter: "http",
		logging.FieldHandler: "admission",
		"webhook":            webhook,
	})
	r = r.WithContext(ctx)
	log := logging.FromCtx(ctx)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxReviewSize))
	if err != nil {
		sendError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var incoming admissionv1.AdmissionReview
	if err := json.Unmarshal(body, &incoming); err != nil || incoming.Request == nil {
		log.Warn().Err(err).Msg("malformed admission review")
		sendError(w, http.StatusBadRequest, "malformed AdmissionReview")
		return
	}
	req := incoming.Request

	resp := &admissionv1.AdmissionResponse{UID: req.UID, Allowed: true}
	if req.Kind.Kind == "Pod" && len(req.Object.Raw) > 0 {
		var pod corev1.Pod
		if err := json.Unmarshal(req.Object.Raw, &pod); err != nil {
			log.Warn().Err(err).Msg("malformed pod in admission review")
			sendError(w, http.StatusBadRequest, "malformed Pod object")
			return
		}
		if err := review(&pod, resp); err != nil {
			log.Error().Err(err).Msg("admission review failed")
			sendError(w, http.StatusInternalServerError, "admission review failed")
			return
		}
	}

	log.Info().
		Str("uid", string(req.UID)).
		Str("namespace", req.Namespace).
		Str("name", req.Name).
		Bool("allowed", resp.Allowed).
		Bool("patched", len(resp.Patch) > 0).
		Msg("admission review handled")

	out := admissionv1.AdmissionReview{
		TypeMeta: incoming.TypeMeta,
		Response: resp,
	}
	if out.APIVersion == "" {
		out.APIVersion = "admission.k8s.io/v1"
		out.Kind = "AdmissionReview"
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Error().Err(err).Msg("failed to encode admission review")
	}
}

func (h *Handler) observe(webhook string, decision domain.Decision) {
	if h.observer != nil {
		h.observer.ObserveAdmission(webhook, decision)
	}
}

func sendError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: msg})
}
