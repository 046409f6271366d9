package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("loading lesson: %w", NewNotFoundError("lesson"))
	if KindOf(err) != KindNotFound {
		t.Fatalf("kind lost through wrapping: %v", KindOf(err))
	}
	if !IsKind(err, KindNotFound) {
		t.Fatalf("IsKind should match")
	}
	if KindOf(errors.New("lesson not found")) != KindUnknown {
		t.Fatalf("plain errors must not be classified by message text")
	}
}

func TestRespondErrorMapsKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{NewAuthenticationError("missing token"), http.StatusUnauthorized, CodeAuthenticationRequired},
		{NewAuthorizationError("course"), http.StatusNotFound, CodeNotFound},
		{NewValidationError("bad %s", "field"), http.StatusBadRequest, CodeValidation},
		{NewSubscriptionRequiredError(), http.StatusForbidden, CodeSubscriptionRequired},
		{errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		RespondError(c, tc.err)

		if rec.Code != tc.status {
			t.Fatalf("%v: status got=%d want=%d", tc.err, rec.Code, tc.status)
		}
		var body ErrorBody
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Code != tc.code {
			t.Fatalf("%v: code got=%q want=%q", tc.err, body.Code, tc.code)
		}
		if body.Error == "" {
			t.Fatalf("%v: error field must be set", tc.err)
		}
	}
}

func TestRespondErrorCarriesRedirectHint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	RespondError(c, NewSubscriptionRequiredError())

	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Redirect != "/pricing" {
		t.Fatalf("redirect got=%q", body.Redirect)
	}
}

func TestWithDetailsLeavesSharedErrorUntouched(t *testing.T) {
	detailed := ErrEmptyTest.WithDetails(map[string]interface{}{"questionIndex": 3})
	if detailed == ErrEmptyTest {
		t.Fatalf("WithDetails must return a copy")
	}
	if ErrEmptyTest.Details != nil {
		t.Fatalf("shared error picked up details: %v", ErrEmptyTest.Details)
	}
	if detailed.Kind != ErrEmptyTest.Kind || detailed.Code != ErrEmptyTest.Code {
		t.Fatalf("copy lost kind or code: %+v", detailed)
	}
}
