package io

import (
	"errors"

	"github.com/ezrec/helix/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelEmpty = errors.New(f("channel empty"))
	ErrChannelFull  = errors.New(f("channel full"))
)
