package psd

import "errors"

var errNotConfigured = errors.New("psd estimator is not configured, call Setup first")
