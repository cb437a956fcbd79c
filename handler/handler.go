package handler

import (
	"Agora/pkg/response"
	"Agora/service"
	"errors"
	"net/http"
)

// wrapServiceError 业务错误映射为统一响应码
func wrapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrForumNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrThreadNotFound),
		errors.Is(err, service.ErrPostNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForumParentXor),
		errors.Is(err, service.ErrForumChainTooDeep):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotLoggedIn):
		return response.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEditForbidden):
		return response.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrReconcileBusy):
		return response.NewError(http.StatusConflict, err.Error())
	default:
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
}
