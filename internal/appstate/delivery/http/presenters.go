package http

import "insight-srv/internal/model"

type selectBrandReq struct {
	Brand string `json:"brand" binding:"required"`
}

type alertCountReq struct {
	Count *int `json:"count" binding:"required"`
}

type comparisonReq struct {
	Influencer model.Influencer `json:"influencer"`
}
