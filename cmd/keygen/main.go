// Command keygen writes a fresh RSA key pair for signing session tokens.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/token"
)

func main() {
	log := logger.NewClientLogger("zephyr-centrum-keygen")

	dir := flag.String("out", "keys", "output directory")
	bits := flag.Int("bits", 2048, "RSA key size")
	flag.Parse()

	keys, err := token.GenerateKeyPair(*bits)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating key pair")
	}

	publicPEM, privatePEM, err := keys.EncodePEM()
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding key pair")
	}

	if err = os.MkdirAll(*dir, 0o700); err != nil {
		log.Fatal().Err(err).Msg("error creating output directory")
	}

	publicPath := filepath.Join(*dir, "public.pem")
	privatePath := filepath.Join(*dir, "private.pem")

	if err = os.WriteFile(publicPath, publicPEM, 0o644); err != nil {
		log.Fatal().Err(err).Msg("error writing public key")
	}
	if err = os.WriteFile(privatePath, privatePEM, 0o600); err != nil {
		log.Fatal().Err(err).Msg("error writing private key")
	}

	fmt.Printf("AUTH_PUBLIC_KEY_PATH=%s\nAUTH_PRIVATE_KEY_PATH=%s\n", publicPath, privatePath)
}
