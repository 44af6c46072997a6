package apierr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atherden/boardwalk/internal/model"
)

func TestToHTTPErrorMapsSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{model.ErrGameNotFound, http.StatusNotFound, CodeGameNotFound},
		{model.ErrNotEnoughPlayers, http.StatusBadRequest, CodeNotEnoughPlayers},
		{model.ErrInvalidDice, http.StatusBadRequest, CodeInvalidDice},
		{model.ErrNotPlayerTurn, http.StatusForbidden, CodeNotYourTurn},
		{model.ErrInsufficientFunds, http.StatusConflict, CodeInsufficientFunds},
		{model.ErrTradeStale, http.StatusConflict, CodeTradeStale},
		// Improvement sentinels map through the family fallback
		{model.ErrUnevenBuild, http.StatusConflict, CodeIllegalImprovement},
		{model.ErrIncompleteColorGroup, http.StatusConflict, CodeIllegalImprovement},
		// Wrapped sentinels still match
		{fmt.Errorf("ending turn: %w", model.ErrGameOver), http.StatusConflict, CodeGameOver},
		{fmt.Errorf("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tc := range cases {
		he := toHTTPError(tc.err)
		assert.Equal(t, tc.status, he.status, "for %v", tc.err)
		assert.Equal(t, tc.code, he.apiError.Code, "for %v", tc.err)
	}
}

func TestToHTTPErrorPassesThroughHTTPErrors(t *testing.T) {
	he := toHTTPError(NewInvalidRequestError("bad payload"))
	assert.Equal(t, http.StatusBadRequest, he.status)
	assert.Equal(t, CodeInvalidRequest, he.apiError.Code)
	assert.Equal(t, "bad payload", he.apiError.Message)
}

func TestWriteErrorBody(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, model.ErrInvalidDice)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, CodeInvalidDice, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}
