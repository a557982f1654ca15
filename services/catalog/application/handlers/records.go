package handlers

import (
	"net/http"

	"github.com/ghuser/cartshop/pkg/errhttp"
	"github.com/ghuser/cartshop/pkg/httpx"
	pkgvalidator "github.com/ghuser/cartshop/pkg/validator"
	appsvcs "github.com/ghuser/cartshop/services/catalog/application/services"
)

// Codec converts between one catalog collection's request DTO, domain
// record and response DTO.
type Codec[T, Req, Resp any] struct {
	// Build validates a decoded request and returns a new record.
	Build func(*Req) (*T, error)
	// Render converts a stored record to its response DTO.
	Render func(*T) Resp
}

func (c Codec[T, Req, Resp]) renderAll(recs []*T) []Resp {
	out := make([]Resp, len(recs))
	for i, rec := range recs {
		out[i] = c.Render(rec)
	}
	return out
}

// ListRecordsHandler handles GET /catalog/{kind} requests.
type ListRecordsHandler[T, Req, Resp any] struct {
	svc   *appsvcs.RecordService[T]
	codec Codec[T, Req, Resp]
}

// NewListRecordsHandler returns a ListRecordsHandler for one collection.
func NewListRecordsHandler[T, Req, Resp any](svc *appsvcs.RecordService[T], codec Codec[T, Req, Resp]) *ListRecordsHandler[T, Req, Resp] {
	return &ListRecordsHandler[T, Req, Resp]{svc: svc, codec: codec}
}

// Execute lists the collection in insertion order.
func (h *ListRecordsHandler[T, Req, Resp]) Execute(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.codec.renderAll(recs))
}

// GetRecordHandler handles GET /catalog/{kind}/{id} requests.
type GetRecordHandler[T, Req, Resp any] struct {
	svc   *appsvcs.RecordService[T]
	codec Codec[T, Req, Resp]
}

// NewGetRecordHandler returns a GetRecordHandler for one collection.
func NewGetRecordHandler[T, Req, Resp any](svc *appsvcs.RecordService[T], codec Codec[T, Req, Resp]) *GetRecordHandler[T, Req, Resp] {
	return &GetRecordHandler[T, Req, Resp]{svc: svc, codec: codec}
}

// Execute returns one record.
func (h *GetRecordHandler[T, Req, Resp]) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.codec.Render(rec))
}

// PostRecordHandler handles POST /catalog/{kind} requests.
type PostRecordHandler[T, Req, Resp any] struct {
	svc   *appsvcs.RecordService[T]
	codec Codec[T, Req, Resp]
}

// NewPostRecordHandler returns a PostRecordHandler for one collection.
func NewPostRecordHandler[T, Req, Resp any](svc *appsvcs.RecordService[T], codec Codec[T, Req, Resp]) *PostRecordHandler[T, Req, Resp] {
	return &PostRecordHandler[T, Req, Resp]{svc: svc, codec: codec}
}

// Execute creates a record.
func (h *PostRecordHandler[T, Req, Resp]) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[Req](w, r)
	if !ok {
		return
	}
	rec, err := h.codec.Build(req)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	rec, err = h.svc.Create(r.Context(), rec)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, h.codec.Render(rec))
}

// PutRecordHandler handles PUT /catalog/{kind}/{id} requests.
type PutRecordHandler[T, Req, Resp any] struct {
	svc   *appsvcs.RecordService[T]
	codec Codec[T, Req, Resp]
}

// NewPutRecordHandler returns a PutRecordHandler for one collection.
func NewPutRecordHandler[T, Req, Resp any](svc *appsvcs.RecordService[T], codec Codec[T, Req, Resp]) *PutRecordHandler[T, Req, Resp] {
	return &PutRecordHandler[T, Req, Resp]{svc: svc, codec: codec}
}

// Execute replaces a record with the request body.
func (h *PutRecordHandler[T, Req, Resp]) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	req, ok := pkgvalidator.ValidateRequest[Req](w, r)
	if !ok {
		return
	}
	rec, err := h.codec.Build(req)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	rec, err = h.svc.Update(r.Context(), id, rec)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.codec.Render(rec))
}

// DeleteRecordHandler handles DELETE /catalog/{kind}/{id} requests.
type DeleteRecordHandler[T any] struct {
	svc *appsvcs.RecordService[T]
}

// NewDeleteRecordHandler returns a DeleteRecordHandler for one collection.
func NewDeleteRecordHandler[T any](svc *appsvcs.RecordService[T]) *DeleteRecordHandler[T] {
	return &DeleteRecordHandler[T]{svc: svc}
}

// Execute deletes a record. Bills that reference it are unaffected.
func (h *DeleteRecordHandler[T]) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
