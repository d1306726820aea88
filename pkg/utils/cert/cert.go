// Package cert generates throwaway self-signed certificates and private
// keys, written to temporary files. It exists for tests that need to exercise
// TLS and mTLS client transports; the creation and PEM-encoding steps are
// behind interfaces so failures can be injected.
package cert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/openkcm/uaa-client/pkg/utils/errs"
)

var (
	ErrFailedToGeneratePrivateKey = errors.New("failed to generate private key")
	ErrFailedToCreateCertificate  = errors.New("failed to create certificate")
	ErrFailedToMarshalPrivateKey  = errors.New("failed to marshal private key")
	ErrFailedToWriteDataToCert    = errors.New("failed to write data to cert.pem")
	ErrFailedToWriteDataToKey     = errors.New("failed to write data to key.pem")
	ErrFailedToCreateCertTempFile = errors.New("failed to create temp file for Cert")
	ErrFailedToCreateKeyTempFile  = errors.New("failed to create temp file for key")
)

// PEMEncoder encodes a block into PEM format.
type PEMEncoder interface {
	Encode(out io.Writer, block *pem.Block) error
}

// DefaultPEMEncoder delegates to the standard library.
type DefaultPEMEncoder struct{}

func (d *DefaultPEMEncoder) Encode(out io.Writer, block *pem.Block) error {
	return pem.Encode(out, block) //nolint:wrapcheck
}

// CertificateCreator creates X.509 certificates and marshals ECDSA private
// keys.
type CertificateCreator interface {
	CreateCertificate(
		rand io.Reader,
		template, parent *x509.Certificate,
		pub, priv interface{},
	) ([]byte, error)
	MarshalECPrivateKey(key *ecdsa.PrivateKey) ([]byte, error)
}

// DefaultCertCreator delegates to the standard library.
type DefaultCertCreator struct{}

func (d *DefaultCertCreator) CreateCertificate(
	rand io.Reader,
	template, parent *x509.Certificate,
	pub, priv interface{},
) ([]byte, error) {
	return x509.CreateCertificate(rand, template, parent, pub, priv) //nolint:wrapcheck
}

func (d *DefaultCertCreator) MarshalECPrivateKey(key *ecdsa.PrivateKey) ([]byte, error) {
	return x509.MarshalECPrivateKey(key) //nolint:wrapcheck
}

// GenerateTemporaryCertAndKey writes a self-signed certificate and matching
// private key to temporary files and returns their paths. The certificate is
// valid for both server and client authentication so the same pair serves CA
// and client-certificate roles in tests.
func GenerateTemporaryCertAndKey() (string, string, error) {
	return generateTempCertKeyPairWithCustomProviders(&DefaultCertCreator{}, &DefaultPEMEncoder{})
}

func generateTempCertKeyPairWithCustomProviders(
	certCreator CertificateCreator, pemEncoder PEMEncoder,
) (string, string, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return "", "", errs.Wrap(ErrFailedToGeneratePrivateKey, err)
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"UAA Client Tests"},
		},
		NotBefore: time.Now(),
		NotAfter:  time.Now().Add(365 * 24 * time.Hour),

		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
	}

	derBytes, err := certCreator.CreateCertificate(
		rand.Reader,
		&template,
		&template,
		&priv.PublicKey,
		priv,
	)
	if err != nil {
		return "", "", errs.Wrap(ErrFailedToCreateCertificate, err)
	}

	certOut, err := os.CreateTemp("", fmt.Sprintf("cert-%d.pem", time.Now().Unix()))
	if err != nil {
		return "", "", errs.Wrap(ErrFailedToCreateCertTempFile, err)
	}
	defer certOut.Close()

	err = pemEncoder.Encode(certOut, &pem.Block{Type: "CERTIFICATE", Bytes: derBytes})
	if err != nil {
		return "", "", errs.Wrap(ErrFailedToWriteDataToCert, err)
	}

	keyOut, err := os.CreateTemp("", fmt.Sprintf("key-%d.pem", time.Now().Unix()))
	if err != nil {
		return "", "", errs.Wrap(ErrFailedToCreateKeyTempFile, err)
	}
	defer keyOut.Close()

	privBytes, err := certCreator.MarshalECPrivateKey(priv)
	if err != nil {
		return "", "", errs.Wrap(ErrFailedToMarshalPrivateKey, err)
	}

	err = pemEncoder.Encode(keyOut, &pem.Block{Type: "EC PRIVATE KEY", Bytes: privBytes})
	if err != nil {
		return "", "", errs.Wrap(ErrFailedToWriteDataToKey, err)
	}

	return certOut.Name(), keyOut.Name(), nil
}
