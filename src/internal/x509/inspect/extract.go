// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inspect

import (
	"crypto/x509"
	"encoding/asn1"
	"time"

	x509certs "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/certs"
	x509oid "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/oid"
)

// Decoder turns one DER certificate into a parsed certificate.
type Decoder interface {
	DecodeDER(der []byte) (*x509.Certificate, error)
}

// Resolver maps object identifiers to short names.
type Resolver interface {
	Resolve(oid asn1.ObjectIdentifier) (string, error)
}

// Inspector classifies handshake certificates and extracts their summaries.
//
// An Inspector holds no per-call state and is safe for concurrent use.
type Inspector struct {
	decoder  Decoder
	resolver Resolver
}

// New creates an Inspector. Nil collaborators fall back to the package defaults.
//
// Parameters:
//   - decoder: DER certificate decoder, defaults to [x509certs.Certificate]
//   - resolver: OID resolver, defaults to [x509oid.Default]
//
// Returns:
//   - *Inspector: New Inspector instance
func New(decoder Decoder, resolver Resolver) *Inspector {
	if decoder == nil {
		decoder = x509certs.New()
	}
	if resolver == nil {
		resolver = x509oid.Default
	}
	return &Inspector{decoder: decoder, resolver: resolver}
}

// Default is the Inspector used by [Extract].
var Default = New(nil, nil)

// Extract summarizes chain with the default Inspector. See [Inspector.Extract].
func Extract(chain [][]byte, now time.Time) (*ChainSummary, error) {
	return Default.Extract(chain, now)
}

// Extract classifies every certificate of chain as leaf or CA and returns the
// summary of the first leaf and the first CA, in handshake order.
//
// A certificate is a CA only when its basic-constraints extension is present
// and marks it as such. Extraction is all or nothing: an empty chain yields
// [ErrNoCertificatesFound], an undecodable entry a [*DecodeError] and an unknown
// algorithm or attribute type an [*OIDResolutionError]. Expired certificates are
// not errors; they are reported through IsValid and TimeToExpiration.
//
// Parameters:
//   - chain: Raw DER certificates as presented during the handshake
//   - now: Instant used for the validity evaluation
//
// Returns:
//   - *ChainSummary: Summary of the chain, nil on error
//   - error: Extraction error, if any
//
// Thread Safety: Safe for concurrent use.
func (in *Inspector) Extract(chain [][]byte, now time.Time) (*ChainSummary, error) {
	if len(chain) == 0 {
		return nil, ErrNoCertificatesFound
	}

	certs := make([]*x509.Certificate, len(chain))
	for i, der := range chain {
		cert, err := in.decoder.DecodeDER(der)
		if err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}
		certs[i] = cert
	}

	var leaves, authorities []certificateFields
	for i, cert := range certs {
		f, err := in.fieldsOf(i, cert, now)
		if err != nil {
			return nil, err
		}

		if f.isCA {
			authorities = append(authorities, f)
		} else {
			leaves = append(leaves, f)
		}
	}

	summary := &ChainSummary{Server: ServerCertificate{SubjectAlternativeNames: []string{}}}
	if len(leaves) > 0 {
		summary.Server = leaves[0].server()
	}
	if len(authorities) > 0 {
		summary.Intermediate = authorities[0].intermediate()
	}

	return summary, nil
}

// certificateFields is everything extracted from one certificate.
type certificateFields struct {
	isCA               bool
	commonName         string
	signatureAlgorithm string
	sans               []string
	country            string
	state              string
	locality           string
	organization       string
	notBefore          time.Time
	notAfter           time.Time
	issuerCommonName   string
	isValid            bool
	timeToExpiration   string
}

func (in *Inspector) fieldsOf(index int, cert *x509.Certificate, now time.Time) (certificateFields, error) {
	f := certificateFields{
		isCA:      cert.BasicConstraintsValid && cert.IsCA,
		notBefore: cert.NotBefore.UTC(),
		notAfter:  cert.NotAfter.UTC(),
	}

	sigOID, err := signatureAlgorithmOID(cert.Raw)
	if err != nil {
		return f, &DecodeError{Index: index, Err: err}
	}
	if f.signatureAlgorithm, err = in.resolver.Resolve(sigOID); err != nil {
		return f, &OIDResolutionError{Index: index, OID: sigOID, Err: err}
	}

	f.isValid, f.timeToExpiration = Evaluate(f.notBefore, f.notAfter, now)

	issuer, oid, err := parseName(cert.RawIssuer, in.resolver.Resolve)
	if err != nil {
		return f, in.nameError(index, oid, err)
	}
	for _, rdn := range issuer {
		for _, attr := range rdn {
			if attr.ShortName == x509oid.CommonName {
				f.issuerCommonName = attr.Value
			}
		}
	}

	subject, oid, err := parseName(cert.RawSubject, in.resolver.Resolve)
	if err != nil {
		return f, in.nameError(index, oid, err)
	}
	for _, rdn := range subject {
		for _, attr := range rdn {
			switch attr.ShortName {
			case x509oid.Country:
				f.country = attr.Value
			case x509oid.StateOrProvince:
				f.state = attr.Value
			case x509oid.Locality:
				f.locality = attr.Value
			case x509oid.CommonName:
				f.commonName = attr.Value
			case x509oid.Organization:
				f.organization = attr.Value
			}
		}
	}

	if !f.isCA {
		// DNSNames holds the dNSName entries of the SAN extension in extension order.
		f.sans = make([]string, 0, len(cert.DNSNames))
		f.sans = append(f.sans, cert.DNSNames...)
	}

	return f, nil
}

func (in *Inspector) nameError(index int, oid *asn1.ObjectIdentifier, err error) error {
	if oid != nil {
		return &OIDResolutionError{Index: index, OID: *oid, Err: err}
	}
	return &DecodeError{Index: index, Err: err}
}

func (f certificateFields) server() ServerCertificate {
	return ServerCertificate{
		CommonName:              f.commonName,
		SignatureAlgorithm:      f.signatureAlgorithm,
		SubjectAlternativeNames: f.sans,
		Country:                 f.country,
		State:                   f.state,
		Locality:                f.locality,
		Organization:            f.organization,
		NotBefore:               f.notBefore,
		NotAfter:                f.notAfter,
		IssuerCommonName:        f.issuerCommonName,
		IsValid:                 f.isValid,
		TimeToExpiration:        f.timeToExpiration,
	}
}

func (f certificateFields) intermediate() IntermediateCertificate {
	return IntermediateCertificate{
		CommonName:         f.commonName,
		SignatureAlgorithm: f.signatureAlgorithm,
		Country:            f.country,
		State:              f.state,
		Locality:           f.locality,
		Organization:       f.organization,
		NotBefore:          f.notBefore,
		NotAfter:           f.notAfter,
		IssuerCommonName:   f.issuerCommonName,
		IsValid:            f.isValid,
		TimeToExpiration:   f.timeToExpiration,
	}
}
