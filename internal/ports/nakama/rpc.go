package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"deuces/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// rulesService is set by InitModule; tests may replace it.
var rulesService *app.Service

// ClassifyRequest is the payload of RpcClassifyCards.
type ClassifyRequest struct {
	Cards []string `json:"cards"`
}

// ClassifyResponse echoes the parsed cards and their classification.
type ClassifyResponse struct {
	Cards []string     `json:"cards"`
	Combo ComboPayload `json:"combo"`
}

// ValidateRequest is the payload of RpcValidateMove. Against is empty when leading.
type ValidateRequest struct {
	Move    []string `json:"move"`
	Against []string `json:"against,omitempty"`
}

// ValidateResponse reports the decision and, on rejection, why.
type ValidateResponse struct {
	Valid  bool         `json:"valid"`
	Reason string       `json:"reason,omitempty"`
	Combo  ComboPayload `json:"combo"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcClassifyCards, RpcClassify); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcValidateMove, RpcValidate)
}

// RpcClassify classifies a group of cards.
//
// Payload: {"cards": ["3D", "4D", "5C", "AC", "2H"]}
func RpcClassify(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	if rulesService == nil {
		logger.Error("RpcClassify: rules service not initialized")
		return "", runtime.NewError("Internal error", codeInternal)
	}

	var req ClassifyRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	cards, err := cardsFromPayload(req.Cards)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	resp := ClassifyResponse{
		Cards: cardsToPayload(cards),
		Combo: comboToPayload(rulesService.Classify(cards)),
	}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

// RpcValidate checks whether a move may be played against the table group.
//
// Payload: {"move": ["4D", "4C"], "against": ["3H", "3S"]}
func RpcValidate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	if rulesService == nil {
		logger.Error("RpcValidate: rules service not initialized")
		return "", runtime.NewError("Internal error", codeInternal)
	}
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req ValidateRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	move, err := cardsFromPayload(req.Move)
	if err != nil {
		return "", runtime.NewError("move "+err.Error(), codeInvalidArgument)
	}
	against, err := cardsFromPayload(req.Against)
	if err != nil {
		return "", runtime.NewError("against "+err.Error(), codeInvalidArgument)
	}

	resp := ValidateResponse{Valid: true, Combo: comboToPayload(rulesService.Classify(move))}
	if err := rulesService.CheckMove(move, against); err != nil {
		resp.Valid = false
		resp.Reason = err.Error()
		logger.Debug("RpcValidate [User:%s]: rejected %v: %v", userID, req.Move, err)
	}
	b, _ := json.Marshal(resp)
	return string(b), nil
}
