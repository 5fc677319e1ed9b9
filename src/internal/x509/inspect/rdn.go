// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inspect

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var errMalformedCertificate = errors.New("malformed certificate structure")

// parseName decodes a DER distinguished name into RDN sets, resolving every
// attribute type. All attributes of a multi-valued RDN are kept.
func parseName(raw []byte, resolve func(asn1.ObjectIdentifier) (string, error)) ([]RDN, *asn1.ObjectIdentifier, error) {
	var seq pkix.RDNSequence
	rest, err := asn1.Unmarshal(raw, &seq)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) != 0 {
		return nil, nil, fmt.Errorf("%w: trailing data after name", errMalformedCertificate)
	}

	rdns := make([]RDN, 0, len(seq))
	for _, set := range seq {
		rdn := make(RDN, 0, len(set))
		for _, atv := range set {
			name, err := resolve(atv.Type)
			if err != nil {
				oid := atv.Type
				return nil, &oid, err
			}
			rdn = append(rdn, Attribute{ShortName: name, Value: attributeString(atv.Value)})
		}
		rdns = append(rdns, rdn)
	}

	return rdns, nil, nil
}

// attributeString renders an attribute value; string types decode to Go strings.
func attributeString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}

// signatureAlgorithmOID reads the outer signatureAlgorithm of a DER certificate:
//
//	Certificate ::= SEQUENCE { tbsCertificate, signatureAlgorithm, signatureValue }
func signatureAlgorithmOID(der []byte) (asn1.ObjectIdentifier, error) {
	input := cryptobyte.String(der)

	var cert, algo cryptobyte.String
	if !input.ReadASN1(&cert, cbasn1.SEQUENCE) {
		return nil, errMalformedCertificate
	}
	if !cert.SkipASN1(cbasn1.SEQUENCE) {
		return nil, errMalformedCertificate
	}
	if !cert.ReadASN1(&algo, cbasn1.SEQUENCE) {
		return nil, errMalformedCertificate
	}

	var oid asn1.ObjectIdentifier
	if !algo.ReadASN1ObjectIdentifier(&oid) {
		return nil, errMalformedCertificate
	}

	return oid, nil
}
