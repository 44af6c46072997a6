package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atherden/boardwalk/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeGameNotFound         = "GAME_NOT_FOUND"
	CodePlayerNotFound       = "PLAYER_NOT_FOUND"
	CodeNotEnoughPlayers     = "NOT_ENOUGH_PLAYERS"
	CodeGameOver             = "GAME_OVER"
	CodeNotYourTurn          = "NOT_YOUR_TURN"
	CodeWrongPhase           = "WRONG_PHASE"
	CodeAlreadyRolled        = "ALREADY_ROLLED"
	CodeInvalidDice          = "INVALID_DICE"
	CodeRollRequired         = "ROLL_REQUIRED"
	CodeDecisionPending      = "DECISION_PENDING"
	CodeNoDecisionPending    = "NO_DECISION_PENDING"
	CodePlayerBankrupt       = "PLAYER_BANKRUPT"
	CodeInJail               = "IN_JAIL"
	CodeNotInJail            = "NOT_IN_JAIL"
	CodeNoJailCard           = "NO_JAIL_CARD"
	CodeInsufficientFunds    = "INSUFFICIENT_FUNDS"
	CodeCellNotOwnable       = "CELL_NOT_OWNABLE"
	CodeCellOwned            = "CELL_OWNED"
	CodeNotOwner             = "NOT_OWNER"
	CodeMortgaged            = "MORTGAGED"
	CodeNotMortgaged         = "NOT_MORTGAGED"
	CodeIllegalImprovement   = "ILLEGAL_IMPROVEMENT"
	CodeTradePending         = "TRADE_PENDING"
	CodeNoTradePending       = "NO_TRADE_PENDING"
	CodeNotTradeRecipient    = "NOT_TRADE_RECIPIENT"
	CodeTradeWithSelf        = "TRADE_WITH_SELF"
	CodeTradeStale           = "TRADE_STALE"
	CodeIllegalTrade         = "ILLEGAL_TRADE"
	CodeInvalidAction        = "INVALID_ACTION"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrNotEnoughPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeNotEnoughPlayers, "At least two players are required"}}
	case errors.Is(err, model.ErrInvalidDice):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDice, "Dice values must be between 1 and 6"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is already over"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrWrongPhase):
		return &httpError{http.StatusConflict, APIError{CodeWrongPhase, "Action not allowed in the current phase"}}
	case errors.Is(err, model.ErrAlreadyRolled):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyRolled, "Dice already rolled this turn"}}
	case errors.Is(err, model.ErrRollRequired):
		return &httpError{http.StatusConflict, APIError{CodeRollRequired, "Roll the dice before ending the turn"}}
	case errors.Is(err, model.ErrDecisionPending):
		return &httpError{http.StatusConflict, APIError{CodeDecisionPending, "A decision must be resolved first"}}
	case errors.Is(err, model.ErrNoDecisionPending):
		return &httpError{http.StatusConflict, APIError{CodeNoDecisionPending, "No decision is pending"}}
	case errors.Is(err, model.ErrPlayerBankrupt):
		return &httpError{http.StatusForbidden, APIError{CodePlayerBankrupt, "Player has been eliminated"}}
	case errors.Is(err, model.ErrInJail):
		return &httpError{http.StatusConflict, APIError{CodeInJail, "Player is in jail"}}
	case errors.Is(err, model.ErrNotInJail):
		return &httpError{http.StatusConflict, APIError{CodeNotInJail, "Player is not in jail"}}
	case errors.Is(err, model.ErrNoJailCard):
		return &httpError{http.StatusConflict, APIError{CodeNoJailCard, "Player holds no get-out-of-jail-free card"}}
	case errors.Is(err, model.ErrInsufficientFunds):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientFunds, "Not enough cash"}}
	case errors.Is(err, model.ErrCellNotOwnable):
		return &httpError{http.StatusBadRequest, APIError{CodeCellNotOwnable, "Cell cannot be owned"}}
	case errors.Is(err, model.ErrCellOwned):
		return &httpError{http.StatusConflict, APIError{CodeCellOwned, "Cell is already owned"}}
	case errors.Is(err, model.ErrNotOwner):
		return &httpError{http.StatusForbidden, APIError{CodeNotOwner, "Player does not own this cell"}}
	case errors.Is(err, model.ErrMortgaged):
		return &httpError{http.StatusConflict, APIError{CodeMortgaged, "Cell is mortgaged"}}
	case errors.Is(err, model.ErrNotMortgaged):
		return &httpError{http.StatusConflict, APIError{CodeNotMortgaged, "Cell is not mortgaged"}}
	case model.IsIllegalImprovement(err):
		return &httpError{http.StatusConflict, APIError{CodeIllegalImprovement, err.Error()}}
	case errors.Is(err, model.ErrTradePending):
		return &httpError{http.StatusConflict, APIError{CodeTradePending, "A trade offer is already pending"}}
	case errors.Is(err, model.ErrNoTradePending):
		return &httpError{http.StatusConflict, APIError{CodeNoTradePending, "No trade offer is pending"}}
	case errors.Is(err, model.ErrNotTradeRecipient):
		return &httpError{http.StatusForbidden, APIError{CodeNotTradeRecipient, "Only the trade recipient can respond"}}
	case errors.Is(err, model.ErrTradeWithSelf):
		return &httpError{http.StatusBadRequest, APIError{CodeTradeWithSelf, "Cannot trade with yourself"}}
	case errors.Is(err, model.ErrTradeStale):
		return &httpError{http.StatusConflict, APIError{CodeTradeStale, "Trade offer no longer valid and was discarded"}}
	case model.IsIllegalTrade(err):
		return &httpError{http.StatusConflict, APIError{CodeIllegalTrade, err.Error()}}
	case model.IsInvalidAction(err):
		return &httpError{http.StatusConflict, APIError{CodeInvalidAction, err.Error()}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
