package dto

import "github.com/Kostiantyn78/ImageHub/internal/platform/cloud"

// TransformRequest carries the optional transformation parameters. At
// least one recognized parameter must be present; the chain builder
// rejects an empty set.
type TransformRequest struct {
	Width  int    `json:"width" binding:"omitempty,min=1"`
	Height int    `json:"height" binding:"omitempty,min=1"`
	Crop   string `json:"crop"`
	Effect string `json:"effect"`
	Border string `json:"border"`
	Angle  int    `json:"angle"`
}

func (r TransformRequest) Params() cloud.Params {
	params := cloud.Params{}
	if r.Width > 0 {
		params["width"] = r.Width
	}
	if r.Height > 0 {
		params["height"] = r.Height
	}
	if r.Crop != "" {
		params["crop"] = r.Crop
	}
	if r.Effect != "" {
		params["effect"] = r.Effect
	}
	if r.Border != "" {
		params["border"] = r.Border
	}
	if r.Angle != 0 {
		params["angle"] = r.Angle
	}
	return params
}
