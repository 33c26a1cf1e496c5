package studentapi

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/school-management/sm-console/api"
)

// List fetches one page of students. Unset search/level filters are omitted
// from the query entirely.
func (c *Client) List(ctx context.Context, page, size int, search, level string) (*api.PageResponse, error) {
	res := &api.PageResponse{}
	apiErr := &api.ErrorResponse{}

	req := c.rest.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("size", strconv.Itoa(size)).
		SetResult(res).
		SetError(apiErr)
	if search != "" {
		req.SetQueryParam("search", search)
	}
	if level != "" {
		req.SetQueryParam("level", level)
	}

	resp, err := req.Get("/api/students")
	if err != nil {
		return nil, errors.Wrap(err, "list students request failed")
	}
	if resp.IsError() {
		return nil, newAPIError(resp.StatusCode(), apiErr)
	}
	return res, nil
}

func (c *Client) Get(ctx context.Context, id int64) (*api.Student, error) {
	res := &api.Student{}
	apiErr := &api.ErrorResponse{}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(res).
		SetError(apiErr).
		Get(fmt.Sprintf("/api/students/%d", id))
	if err != nil {
		return nil, errors.Wrapf(err, "get student %d request failed", id)
	}
	if resp.IsError() {
		return nil, newAPIError(resp.StatusCode(), apiErr)
	}
	return res, nil
}

func (c *Client) Create(ctx context.Context, student *api.Student) (*api.Student, error) {
	res := &api.Student{}
	apiErr := &api.ErrorResponse{}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(student).
		SetResult(res).
		SetError(apiErr).
		Post("/api/students")
	if err != nil {
		return nil, errors.Wrap(err, "create student request failed")
	}
	if resp.IsError() {
		return nil, newAPIError(resp.StatusCode(), apiErr)
	}
	return res, nil
}

func (c *Client) Update(ctx context.Context, id int64, student *api.Student) (*api.Student, error) {
	res := &api.Student{}
	apiErr := &api.ErrorResponse{}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(student).
		SetResult(res).
		SetError(apiErr).
		Put(fmt.Sprintf("/api/students/%d", id))
	if err != nil {
		return nil, errors.Wrapf(err, "update student %d request failed", id)
	}
	if resp.IsError() {
		return nil, newAPIError(resp.StatusCode(), apiErr)
	}
	return res, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	apiErr := &api.ErrorResponse{}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetError(apiErr).
		Delete(fmt.Sprintf("/api/students/%d", id))
	if err != nil {
		return errors.Wrapf(err, "delete student %d request failed", id)
	}
	if resp.IsError() {
		return newAPIError(resp.StatusCode(), apiErr)
	}
	return nil
}

// ExportCSV fetches the CSV payload honoring the same optional filters as List.
func (c *Client) ExportCSV(ctx context.Context, search, level string) ([]byte, error) {
	req := c.rest.R().SetContext(ctx)
	if search != "" {
		req.SetQueryParam("search", search)
	}
	if level != "" {
		req.SetQueryParam("level", level)
	}

	resp, err := req.Get("/api/students/export")
	if err != nil {
		return nil, errors.Wrap(err, "export csv request failed")
	}
	if resp.IsError() {
		return nil, newAPIError(resp.StatusCode(), nil)
	}
	return resp.Body(), nil
}

// ImportCSV uploads a CSV file as multipart form data under the "file" field
// and returns the server's human-readable status line.
func (c *Client) ImportCSV(ctx context.Context, filename string, file io.Reader) (string, error) {
	apiErr := &api.ErrorResponse{}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetFileReader("file", filename, file).
		SetError(apiErr).
		Post("/api/students/import")
	if err != nil {
		return "", errors.Wrap(err, "import csv request failed")
	}
	if resp.IsError() {
		return "", newAPIError(resp.StatusCode(), apiErr)
	}
	return resp.String(), nil
}
