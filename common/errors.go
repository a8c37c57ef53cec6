package common

import "errors"

var (
	ErrAssetLoadFailed     = errors.New("asset load failed")
	ErrResourceUnavailable = errors.New("resource unavailable")
)
