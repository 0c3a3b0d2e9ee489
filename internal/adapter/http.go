package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/utils"
	"github.com/MKhiriev/notes-keeper/models"
)

const (
	notesPath = "/api/notes"
	notePath  = "/api/notes/{id}"

	traceIDHeader = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises the base URL from cfg.HTTPAddress and configures the client
// with the request timeout and, when cfg.HashKey is set, body signing.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	var hasher *utils.Hasher
	if cfg.HashKey != "" {
		hasher = utils.NewHasher(cfg.HashKey)
	}

	client := utils.NewHTTPClient().
		WithBaseURL(baseURL).
		WithTimeout(cfg.RequestTimeout).
		WithBodySigning(hasher)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.request(ctx).
		SetResult(&notes).
		Get(notesPath)
	if err = h.check("ListNotes", resp, err); err != nil {
		return nil, err
	}

	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (h *httpServerAdapter) GetNote(ctx context.Context, id string) (models.Note, error) {
	var note models.Note

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&note).
		Get(notePath)
	if err = h.check("GetNote", resp, err); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	var note models.Note

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&note).
		Post(notesPath)
	if err = h.check("CreateNote", resp, err); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, id string, input models.NoteInput) (models.Note, error) {
	var note models.Note

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&note).
		Put(notePath)
	if err = h.check("UpdateNote", resp, err); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete(notePath)

	return h.check("DeleteNote", resp, err)
}

func (h *httpServerAdapter) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}

// request starts a resty request bound to ctx, forwarding its trace id.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

// check turns a transport error or a non-2xx answer into an adapter error
// and logs it.
func (h *httpServerAdapter) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrNetwork, err)
	} else {
		err = mapHTTPError(resp)
	}

	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter."+op).Msg("request to notes server failed")
	}
	return err
}
