package jsonutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return env
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]string{"key": "value"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	env := decode(t, rec)
	if !env.Success {
		t.Error("Success = false, want true")
	}
	if env.Error != "" {
		t.Errorf("Error = %q, want empty", env.Error)
	}
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, nil, "Created it")

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	env := decode(t, rec)
	if env.Message != "Created it" {
		t.Errorf("Message = %q, want Created it", env.Message)
	}
}

func TestFail(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, http.StatusInternalServerError, "Something broke", errors.New("disk on fire"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	env := decode(t, rec)
	if env.Success {
		t.Error("Success = true, want false")
	}
	if env.Message != "Something broke" {
		t.Errorf("Message = %q, want Something broke", env.Message)
	}
	if env.Error != "disk on fire" {
		t.Errorf("Error = %q, want disk on fire", env.Error)
	}
}

func TestFailureHelpers(t *testing.T) {
	cases := []struct {
		name string
		fn   func(http.ResponseWriter, string)
		code int
	}{
		{"BadRequest", BadRequest, http.StatusBadRequest},
		{"Unauthorized", Unauthorized, http.StatusUnauthorized},
		{"NotFound", NotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.fn(rec, "nope")
		if rec.Code != tc.code {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, tc.code)
		}
		env := decode(t, rec)
		if env.Success {
			t.Errorf("%s: Success = true, want false", tc.name)
		}
	}
}
