// Released under an MIT license. See LICENSE.

// Package common defines bits shared across abc's packages.
package common

import "errors"

// ErrQuit signals an orderly end of the interactive session.
var ErrQuit = errors.New("quit") //nolint:gochecknoglobals
