package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aura-nw/marketplace-api/domain"
	"github.com/aura-nw/marketplace-api/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrAlreadyExists):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrUnauthorized) ||
			errors.Is(err, domain.ErrInvalidSignature):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrBadParamInput) ||
			errors.Is(err, domain.ErrInvalidAuctionConfig) ||
			errors.Is(err, domain.ErrInvalidNumberFormat) ||
			errors.Is(err, domain.ErrInvalidAddress):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrListingNotActive) ||
			errors.Is(err, domain.ErrSelfTrade) ||
			errors.Is(err, domain.ErrSaleNotStarted) ||
			errors.Is(err, domain.ErrSaleEnded) ||
			errors.Is(err, domain.ErrInsufficientFunds) ||
			errors.Is(err, domain.ErrInsufficientAllowance) ||
			errors.Is(err, domain.ErrInsufficientBalance) ||
			errors.Is(err, domain.ErrOfferExpired) ||
			errors.Is(err, domain.ErrInvalidOrderShape) ||
			errors.Is(err, domain.ErrRoyaltyExceedsPrice):
			status = http.StatusUnprocessableEntity
		}
		// internal details never leave the server
		if status >= 500 {
			err = domain.ErrInternalServerError
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
