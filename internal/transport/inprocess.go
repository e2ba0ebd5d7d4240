package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
)

var ErrNilHandler = errors.New("transport: in-process handler is nil")

// InProcess serves requests straight into Handler without opening a socket.
type InProcess struct {
	Handler http.Handler
}

func NewInProcess(h http.Handler) *InProcess {
	return &InProcess{Handler: h}
}

func (p *InProcess) Get(ctx context.Context, path string) (status int, body []byte, err error) {
	if p.Handler == nil {
		return 0, nil, ErrNilHandler
	}
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	// httptest panics on unparsable targets and a panicking handler is the
	// in-process version of a broken response; both surface as errors.
	defer func() {
		if v := recover(); v != nil {
			status, body, err = 0, nil, fmt.Errorf("in-process %s %s: %v", http.MethodGet, path, v)
		}
	}()

	req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	p.Handler.ServeHTTP(rec, req)

	return rec.Code, rec.Body.Bytes(), nil
}
