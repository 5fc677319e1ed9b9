// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inspect

import "time"

// ServerCertificate summarizes the leaf certificate of a chain.
type ServerCertificate struct {
	CommonName              string    `json:"common_name" yaml:"common_name"`
	SignatureAlgorithm      string    `json:"signature_algorithm" yaml:"signature_algorithm"`
	SubjectAlternativeNames []string  `json:"subject_alternative_names" yaml:"subject_alternative_names"`
	Country                 string    `json:"country" yaml:"country"`
	State                   string    `json:"state" yaml:"state"`
	Locality                string    `json:"locality" yaml:"locality"`
	Organization            string    `json:"organization" yaml:"organization"`
	NotBefore               time.Time `json:"not_before" yaml:"not_before"`
	NotAfter                time.Time `json:"not_after" yaml:"not_after"`
	IssuerCommonName        string    `json:"issuer_common_name" yaml:"issuer_common_name"`
	IsValid                 bool      `json:"is_valid" yaml:"is_valid"`
	TimeToExpiration        string    `json:"time_to_expiration,omitempty" yaml:"time_to_expiration,omitempty"`
}

// IntermediateCertificate summarizes the first CA certificate of a chain.
// CA certificates are not evaluated for subject alternative names.
type IntermediateCertificate struct {
	CommonName         string    `json:"common_name" yaml:"common_name"`
	SignatureAlgorithm string    `json:"signature_algorithm" yaml:"signature_algorithm"`
	Country            string    `json:"country" yaml:"country"`
	State              string    `json:"state" yaml:"state"`
	Locality           string    `json:"locality" yaml:"locality"`
	Organization       string    `json:"organization" yaml:"organization"`
	NotBefore          time.Time `json:"not_before" yaml:"not_before"`
	NotAfter           time.Time `json:"not_after" yaml:"not_after"`
	IssuerCommonName   string    `json:"issuer_common_name" yaml:"issuer_common_name"`
	IsValid            bool      `json:"is_valid" yaml:"is_valid"`
	TimeToExpiration   string    `json:"time_to_expiration,omitempty" yaml:"time_to_expiration,omitempty"`
}

// ChainSummary pairs the leaf summary with the intermediate summary of one chain.
//
// A slot for which the chain carried no matching certificate is left at its zero value.
type ChainSummary struct {
	Server       ServerCertificate       `json:"server" yaml:"server"`
	Intermediate IntermediateCertificate `json:"intermediate" yaml:"intermediate"`
}

// Attribute is one type/value pair of a relative distinguished name.
type Attribute struct {
	ShortName string
	Value     string
}

// RDN is a relative distinguished name: a set of attributes, usually just one.
type RDN []Attribute

// IsZero reports whether the slot was left empty because the chain had no leaf.
func (s ServerCertificate) IsZero() bool { return s.NotAfter.IsZero() && s.CommonName == "" }

// IsZero reports whether the slot was left empty because the chain had no CA.
func (s IntermediateCertificate) IsZero() bool { return s.NotAfter.IsZero() && s.CommonName == "" }
