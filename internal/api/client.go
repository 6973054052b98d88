package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/evep-admin/internal/models"
	"github.com/noah-isme/evep-admin/pkg/config"
	apperrors "github.com/noah-isme/evep-admin/pkg/errors"
)

const teachersPath = "/evep/teachers"

// Client talks to the EVEP backend REST API. Requests carry a bearer token
// and a per-call X-Request-ID. There are no retries: an operation either
// succeeds or collapses into its single failure outcome.
type Client struct {
	http   *resty.Client
	prefix string
	logger *zap.Logger
}

// NewClient builds a Client from API configuration.
func NewClient(cfg config.APIConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		rc.SetAuthToken(cfg.Token)
	}
	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return &Client{
		http:   rc,
		prefix: strings.TrimRight(cfg.Prefix, "/"),
		logger: logger,
	}
}

type teacherListResponse struct {
	Teachers []models.TeacherRecord `json:"teachers"`
}

// ListTeachers fetches the full record collection. A missing "teachers"
// field decodes as an empty list.
func (c *Client) ListTeachers(ctx context.Context) ([]models.TeacherRecord, error) {
	var result teacherListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		Get(c.prefix + teachersPath)
	if err := c.check(resp, err, "list teachers"); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrFetchFailed, err)
	}

	if result.Teachers == nil {
		return []models.TeacherRecord{}, nil
	}
	return result.Teachers, nil
}

// CreateTeacher posts a new draft. The response body is ignored; callers
// reload the list instead of merging the created record.
func (c *Client) CreateTeacher(ctx context.Context, draft models.DraftForm) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(draft).
		Post(c.prefix + teachersPath)
	if err := c.check(resp, err, "create teacher"); err != nil {
		return apperrors.Wrap(apperrors.ErrCreateFailed, err)
	}
	return nil
}

// UpdateTeacher puts the full draft to the per-id endpoint.
func (c *Client) UpdateTeacher(ctx context.Context, id string, draft models.DraftForm) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(draft).
		Put(fmt.Sprintf("%s%s/%s", c.prefix, teachersPath, id))
	if err := c.check(resp, err, "update teacher"); err != nil {
		return apperrors.Wrap(apperrors.ErrUpdateFailed, err)
	}
	return nil
}

// DeleteTeacher removes the record with the given id.
func (c *Client) DeleteTeacher(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("%s%s/%s", c.prefix, teachersPath, id))
	if err := c.check(resp, err, "delete teacher"); err != nil {
		return apperrors.Wrap(apperrors.ErrDeleteFailed, err)
	}
	return nil
}

// check collapses transport errors and non-2xx statuses into one error.
func (c *Client) check(resp *resty.Response, err error, op string) error {
	if err != nil {
		c.logger.Error("EVEP API call failed",
			zap.String("op", op),
			zap.Error(err),
		)
		return err
	}
	if resp.IsError() {
		c.logger.Error("EVEP API returned error status",
			zap.String("op", op),
			zap.Int("status_code", resp.StatusCode()),
		)
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	c.logger.Debug("EVEP API call completed",
		zap.String("op", op),
		zap.Int("status_code", resp.StatusCode()),
	)
	return nil
}
