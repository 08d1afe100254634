package service

import "errors"

var ErrStatsUnavailable = errors.New("generation stats are not available")
