package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/shayangolmezerji/ChargeAPI/internal/config"
	"github.com/shayangolmezerji/ChargeAPI/internal/models"
	"github.com/shayangolmezerji/ChargeAPI/internal/utils"
	"github.com/shayangolmezerji/ChargeAPI/pkg/chargereseller"
)

// Operator prefix rules. Full-match only; evaluated in order, first match wins.
var (
	mtnPattern     = regexp.MustCompile(`^09[03]\d{8}$`)
	mciPattern     = regexp.MustCompile(`^09[19]\d{8}$`)
	wimaxPattern   = regexp.MustCompile(`^094\d{8}$`)
	rightelPattern = regexp.MustCompile(`^092[0-2]\d{7}$`)
)

// ClassifyOperator maps a phone number and its charge modifiers to the
// reseller operator code. Pure function; returns ErrOperatorNotFound when no
// prefix rule matches.
func ClassifyOperator(phone string, super, daemi bool) (models.Operator, error) {
	switch {
	case mtnPattern.MatchString(phone):
		if super {
			return models.OperatorMTNSuper, nil
		}
		if daemi {
			return models.OperatorMTNDaemi, nil
		}
		return models.OperatorMTN, nil
	case mciPattern.MatchString(phone):
		return models.OperatorMCI, nil
	case wimaxPattern.MatchString(phone):
		return models.OperatorWiMax, nil
	case rightelPattern.MatchString(phone):
		if super {
			return models.OperatorRightelSuper, nil
		}
		return models.OperatorRightel, nil
	}
	return "", utils.ErrOperatorNotFound
}

// ChargeService orchestrates a single top-up request: validate, classify the
// operator, relay to the reseller, and translate failures.
type ChargeService struct {
	reseller    *chargereseller.Client
	resellerCfg *config.ResellerConfig
}

// NewChargeService constructs a ChargeService.
func NewChargeService(reseller *chargereseller.Client, resellerCfg *config.ResellerConfig) *ChargeService {
	return &ChargeService{
		reseller:    reseller,
		resellerCfg: resellerCfg,
	}
}

// Charge validates the request and relays it to the reseller API. On success
// it returns the unwrapped upstream JSON verbatim. All validation happens
// before any network call.
func (s *ChargeService) Charge(ctx context.Context, req *models.ChargeRequest) (json.RawMessage, error) {
	if req.Amount < models.AmountMin || req.Amount > models.AmountMax {
		return nil, utils.ErrAmountOutOfRange
	}
	if req.ChargeType != models.ChargeTypeDirect && req.ChargeType != models.ChargeTypePincode {
		return nil, utils.ErrInvalidChargeType
	}

	operator, err := ClassifyOperator(req.Phone, req.Super, req.Daemi)
	if err != nil {
		return nil, err
	}

	if err := s.resellerCfg.Validate(); err != nil {
		return nil, err
	}

	params := chargereseller.ChargeParams{
		Amount:    req.Amount,
		Cellphone: req.Phone,
		Operator:  string(operator),
	}

	var result json.RawMessage
	if req.ChargeType == models.ChargeTypePincode {
		result, err = s.reseller.BuyProduct(ctx, params)
	} else {
		result, err = s.reseller.TopUp(ctx, params)
	}
	if err != nil {
		log.Warn().
			Err(err).
			Str("operator", string(operator)).
			Str("charge_type", string(req.ChargeType)).
			Msg("Reseller call failed")
		return nil, translateResellerError(err)
	}

	return result, nil
}

// translateResellerError maps client errors onto the service taxonomy.
func translateResellerError(err error) error {
	switch {
	case errors.Is(err, chargereseller.ErrTimeout):
		return utils.ErrUpstreamTimeout
	case errors.Is(err, chargereseller.ErrUnavailable):
		return utils.ErrUpstreamUnavailable
	case errors.Is(err, chargereseller.ErrBadStatus):
		return utils.ErrUpstreamStatus
	case errors.Is(err, chargereseller.ErrInvalidResponse):
		return utils.ErrInvalidUpstreamResponse
	}
	return err
}
