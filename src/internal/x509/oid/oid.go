// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509oid

import (
	"encoding/asn1"
	"errors"
	"fmt"
)

// ErrUnknownOID indicates that an object identifier has no registered short name.
var ErrUnknownOID = errors.New("x509oid: unknown object identifier")

// Short names for the distinguished-name attribute types the inspector maps into records.
const (
	CommonName         = "CN"
	Country            = "C"
	StateOrProvince    = "ST"
	Locality           = "L"
	Organization       = "O"
	OrganizationalUnit = "OU"
)

// registry maps dotted OIDs to the short names used in reports.
//
// Attribute types use their X.520 short names, signature algorithms use the
// long names familiar from OpenSSL output (e.g. sha256WithRSAEncryption).
var registry = map[string]string{
	// X.520 attribute types
	"2.5.4.3":  CommonName,
	"2.5.4.4":  "SN",
	"2.5.4.5":  "serialNumber",
	"2.5.4.6":  Country,
	"2.5.4.7":  Locality,
	"2.5.4.8":  StateOrProvince,
	"2.5.4.9":  "street",
	"2.5.4.10": Organization,
	"2.5.4.11": OrganizationalUnit,
	"2.5.4.12": "title",
	"2.5.4.13": "description",
	"2.5.4.15": "businessCategory",
	"2.5.4.17": "postalCode",
	"2.5.4.41": "name",
	"2.5.4.42": "GN",
	"2.5.4.43": "initials",
	"2.5.4.44": "generationQualifier",
	"2.5.4.45": "x500UniqueIdentifier",
	"2.5.4.46": "dnQualifier",
	"2.5.4.65": "pseudonym",
	"2.5.4.72": "role",
	"2.5.4.97": "organizationIdentifier",

	// PKCS#9, RFC 4519 and EV jurisdiction attributes
	"1.2.840.113549.1.9.1":       "emailAddress",
	"0.9.2342.19200300.100.1.1":  "UID",
	"0.9.2342.19200300.100.1.25": "DC",
	"1.3.6.1.4.1.311.60.2.1.1":   "jurisdictionL",
	"1.3.6.1.4.1.311.60.2.1.2":   "jurisdictionST",
	"1.3.6.1.4.1.311.60.2.1.3":   "jurisdictionC",

	// RSA signature algorithms
	"1.2.840.113549.1.1.2":  "md2WithRSAEncryption",
	"1.2.840.113549.1.1.4":  "md5WithRSAEncryption",
	"1.2.840.113549.1.1.5":  "sha1WithRSAEncryption",
	"1.2.840.113549.1.1.10": "rsassaPss",
	"1.2.840.113549.1.1.11": "sha256WithRSAEncryption",
	"1.2.840.113549.1.1.12": "sha384WithRSAEncryption",
	"1.2.840.113549.1.1.13": "sha512WithRSAEncryption",
	"1.2.840.113549.1.1.14": "sha224WithRSAEncryption",

	// DSA and ECDSA signature algorithms
	"1.2.840.10040.4.3":      "dsaWithSHA1",
	"2.16.840.1.101.3.4.3.2": "dsa_with_SHA256",
	"1.2.840.10045.4.1":      "ecdsa-with-SHA1",
	"1.2.840.10045.4.3.1":    "ecdsa-with-SHA224",
	"1.2.840.10045.4.3.2":    "ecdsa-with-SHA256",
	"1.2.840.10045.4.3.3":    "ecdsa-with-SHA384",
	"1.2.840.10045.4.3.4":    "ecdsa-with-SHA512",

	// EdDSA
	"1.3.101.112": "ED25519",
	"1.3.101.113": "ED448",
}

// Resolver maps object identifiers to short names.
//
// The zero value is not usable; use [New] or [Default].
type Resolver struct {
	names map[string]string
}

// Default is the resolver backed by the built-in registry.
var Default = New()

// New creates a Resolver with the built-in registry.
func New() *Resolver {
	names := make(map[string]string, len(registry))
	for k, v := range registry {
		names[k] = v
	}
	return &Resolver{names: names}
}

// Resolve returns the short name registered for oid.
//
// An unregistered identifier yields an error wrapping [ErrUnknownOID]
// that carries the dotted form of oid.
func (r *Resolver) Resolve(oid asn1.ObjectIdentifier) (string, error) {
	key := oid.String()
	if name, ok := r.names[key]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownOID, key)
}

// Register adds or replaces the short name for oid.
//
// Register is not safe for concurrent use with Resolve; call it during setup.
func (r *Resolver) Register(oid asn1.ObjectIdentifier, name string) {
	r.names[oid.String()] = name
}
