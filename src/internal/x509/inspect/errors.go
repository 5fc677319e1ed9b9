// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inspect

import (
	"encoding/asn1"
	"errors"
	"fmt"
)

var (
	// ErrNoCertificatesFound indicates that the chain handed to Extract was empty.
	ErrNoCertificatesFound = errors.New("x509inspect: no certificates found")

	// ErrDecode is matched by every [DecodeError].
	ErrDecode = errors.New("x509inspect: failed to decode certificate")

	// ErrOIDResolution is matched by every [OIDResolutionError].
	ErrOIDResolution = errors.New("x509inspect: failed to resolve object identifier")
)

// DecodeError reports a chain entry that could not be decoded.
type DecodeError struct {
	Index int   // position in the chain
	Err   error // decoder error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at index %d: %v", ErrDecode, e.Index, e.Err)
}

// Unwrap exposes both [ErrDecode] and the decoder's own error.
func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }

// OIDResolutionError reports an algorithm or attribute type with no known name.
type OIDResolutionError struct {
	Index int                   // position in the chain
	OID   asn1.ObjectIdentifier // unresolved identifier
	Err   error                 // resolver error
}

func (e *OIDResolutionError) Error() string {
	return fmt.Sprintf("%v %s at index %d: %v", ErrOIDResolution, e.OID, e.Index, e.Err)
}

// Unwrap exposes both [ErrOIDResolution] and the resolver's own error.
func (e *OIDResolutionError) Unwrap() []error { return []error{ErrOIDResolution, e.Err} }
