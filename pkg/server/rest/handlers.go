package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexgaaranes/PJDSC-25/pkg/datastructure"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/prioritization"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/reachability"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/routingalgorithm"
	"github.com/alexgaaranes/PJDSC-25/pkg/server"
	"github.com/alexgaaranes/PJDSC-25/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"
)

type AnalyticsService interface {
	ComputeRoute(ctx context.Context, in service.RouteInput) (routingalgorithm.Route, error)
	UnreachableNodes(ctx context.Context, in service.ReachabilityInput) (reachability.Report, error)
	PrioritizeHouseholds(ctx context.Context, households []prioritization.Household) ([]prioritization.RankedHousehold, error)
}

type AnalyticsHandler struct {
	svc      AnalyticsService
	m        *Metrics
	log      *zap.Logger
	validate *validator.Validate
	trans    ut.Translator
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return validate, trans
}

func AnalyticsRouter(r *chi.Mux, svc AnalyticsService, m *Metrics, log *zap.Logger) {
	validate, trans := newValidator()
	handler := &AnalyticsHandler{svc: svc, m: m, log: log, validate: validate, trans: trans}

	r.Group(func(r chi.Router) {
		r.Get("/api/health", handler.Health)
		r.Route("/api/analytics", func(r chi.Router) {
			r.Post("/route", handler.Route)
			r.Post("/unreachable", handler.Unreachable)
			r.Post("/prioritize", handler.Prioritize)
		})
	})
}

// NodeRequest model info
//
//	@Description	graph node
type NodeRequest struct {
	ID  string  `json:"id" validate:"required"`
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// EdgeRequest model info
//
//	@Description	undirected graph edge with a positive distance
type EdgeRequest struct {
	A    string  `json:"a" validate:"required"`
	B    string  `json:"b" validate:"required"`
	Dist float64 `json:"dist" validate:"required,gt=0"`
}

func toGraph(nodes []NodeRequest, edges []EdgeRequest) ([]datastructure.GraphNode, []datastructure.GraphEdge) {
	gNodes := make([]datastructure.GraphNode, 0, len(nodes))
	for _, n := range nodes {
		gNodes = append(gNodes, datastructure.NewGraphNode(n.ID, n.Lat, n.Lon))
	}
	gEdges := make([]datastructure.GraphEdge, 0, len(edges))
	for _, e := range edges {
		gEdges = append(gEdges, datastructure.NewGraphEdge(e.A, e.B, e.Dist))
	}
	return gNodes, gEdges
}

// RouteRequest model info
//
//	@Description	request body for hazard aware routing
type RouteRequest struct {
	Nodes         []NodeRequest     `json:"nodes" validate:"required,dive"`
	Edges         []EdgeRequest     `json:"edges" validate:"dive"`
	Start         string            `json:"start" validate:"required"`
	Goal          string            `json:"goal" validate:"required"`
	HazardGeoJSON []json.RawMessage `json:"hazardGeoJSON" swaggertype:"array,object"`
	Penalty       float64           `json:"penalty,omitempty" validate:"gte=0"`
}

func (s *RouteRequest) Bind(r *http.Request) error {
	if len(s.Nodes) == 0 {
		return errors.New("nodes must not be empty")
	}
	return nil
}

// RouteResponse model info
//
//	@Description	response body for hazard aware routing
type RouteResponse struct {
	NodePath    []string     `json:"nodePath"`
	Coordinates [][2]float64 `json:"coordinates"`
	Cost        float64      `json:"cost"`
	DistanceKm  float64      `json:"distanceKm"`
	Polyline    string       `json:"polyline"`
	HazardEdges int          `json:"hazardEdges"`
}

func RenderRouteResponse(route routingalgorithm.Route) *RouteResponse {
	return &RouteResponse{
		NodePath:    route.NodePath,
		Coordinates: route.Coordinates,
		Cost:        route.Cost,
		DistanceKm:  route.DistanceKm,
		Polyline:    route.Polyline,
		HazardEdges: route.HazardEdges,
	}
}

// Route
//
//	@Summary		shortest path that avoids hazard zones
//	@Description	every edge touching a hazard geometry costs its distance plus a flat penalty
//	@Tags			analytics
//	@Param			body	body	RouteRequest	true	"graph, endpoints and hazard geometries"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/analytics/route [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *AnalyticsHandler) Route(w http.ResponseWriter, r *http.Request) {
	data := &RouteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateStruct(w, r, *data) {
		return
	}

	nodes, edges := toGraph(data.Nodes, data.Edges)
	route, err := h.svc.ComputeRoute(r.Context(), service.RouteInput{
		Nodes:   nodes,
		Edges:   edges,
		Start:   data.Start,
		Goal:    data.Goal,
		Hazards: data.HazardGeoJSON,
		Penalty: data.Penalty,
	})
	if err != nil {
		render.Render(w, r, h.errorResponse(err))
		return
	}
	h.m.hazardEdges.WithLabelValues("penalty").Add(float64(route.HazardEdges))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteResponse(route))
}

// ReachabilityRequest model info
//
//	@Description	request body for hazard reachability analysis
type ReachabilityRequest struct {
	Nodes         []NodeRequest     `json:"nodes" validate:"required,dive"`
	Edges         []EdgeRequest     `json:"edges" validate:"dive"`
	HazardGeoJSON []json.RawMessage `json:"hazardGeoJSON" swaggertype:"array,object"`
}

func (s *ReachabilityRequest) Bind(r *http.Request) error {
	if len(s.Nodes) == 0 {
		return errors.New("nodes must not be empty")
	}
	return nil
}

// ReachabilityResponse model info
//
//	@Description	nodes left without any edge once hazard edges are removed
type ReachabilityResponse struct {
	Unreachable   []string          `json:"unreachable"`
	RemovedEdges  int               `json:"removedEdges"`
	Components    int               `json:"components"`
	IsolatedCells map[string]string `json:"isolatedCells"`
}

// Unreachable
//
//	@Summary		nodes isolated by hazards
//	@Description	removes every edge touching a hazard and lists nodes whose degree drops to zero
//	@Tags			analytics
//	@Param			body	body	ReachabilityRequest	true	"graph and hazard geometries"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/analytics/unreachable [post]
//	@Success		200	{object}	ReachabilityResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *AnalyticsHandler) Unreachable(w http.ResponseWriter, r *http.Request) {
	data := &ReachabilityRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateStruct(w, r, *data) {
		return
	}

	nodes, edges := toGraph(data.Nodes, data.Edges)
	report, err := h.svc.UnreachableNodes(r.Context(), service.ReachabilityInput{
		Nodes:   nodes,
		Edges:   edges,
		Hazards: data.HazardGeoJSON,
	})
	if err != nil {
		render.Render(w, r, h.errorResponse(err))
		return
	}
	h.m.hazardEdges.WithLabelValues("removal").Add(float64(report.RemovedEdges))
	h.m.unreachable.Add(float64(len(report.Unreachable)))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &ReachabilityResponse{
		Unreachable:   report.Unreachable,
		RemovedEdges:  report.RemovedEdges,
		Components:    report.Components,
		IsolatedCells: report.IsolatedCells,
	})
}

// Prioritize
//
//	@Summary		rank households by evacuation urgency
//	@Description	score = 2.5*elderly + 2*pwd + 1.5*pregnant + children + 1.25*hazardSeverity + 0.5*distanceKm + 1
//	@Tags			analytics
//	@Param			body	body	[]prioritization.Household	true	"households, unknown fields are returned unchanged"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/analytics/prioritize [post]
//	@Success		200	{array}		prioritization.RankedHousehold
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *AnalyticsHandler) Prioritize(w http.ResponseWriter, r *http.Request) {
	var households []prioritization.Household
	if err := render.DecodeJSON(r.Body, &households); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := h.validate.Var(households, "dive"); err != nil {
		render.Render(w, r, ErrValidation(err, translateError(err, h.trans)))
		return
	}

	ranked, err := h.svc.PrioritizeHouseholds(r.Context(), households)
	if err != nil {
		render.Render(w, r, h.errorResponse(err))
		return
	}
	h.m.householdsRated.Add(float64(len(ranked)))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, ranked)
}

// Health
//
//	@Summary	liveness probe
//	@Tags		health
//	@Produce	application/json
//	@Router		/health [get]
//	@Success	200	{object}	map[string]string
func (h *AnalyticsHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (h *AnalyticsHandler) validateStruct(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	if err := h.validate.Struct(data); err != nil {
		vv := translateError(err, h.trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

func (h *AnalyticsHandler) errorResponse(err error) render.Renderer {
	switch server.CodeOf(err) {
	case server.ErrBadParamInput:
		return ErrInvalidRequest(err)
	default:
		if errors.Is(err, context.Canceled) {
			return ErrInvalidRequest(err)
		}
		h.log.Error("analytics request failed", zap.Error(err))
		return ErrInternalServerErrorRend(errors.New("internal server error"))
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

// ErrResponse model info
//
//	@Description	error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 500,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}
