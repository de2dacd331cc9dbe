package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mr-shifu/rsa-lib/core/math/sample"
	cs_rsa "github.com/mr-shifu/rsa-lib/pkg/common/cryptosuite/rsa"
	"github.com/mr-shifu/rsa-lib/pkg/cryptosuite/sw/rsa"
	"github.com/mr-shifu/rsa-lib/pkg/keyopts"
	"github.com/mr-shifu/rsa-lib/pkg/keystore"
	"github.com/mr-shifu/rsa-lib/pkg/vault"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const defaultMessage = "Olá RSA (didático)!"

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "bits",
			Aliases: []string{"b"},
			Usage:   "Bit length of the modulus",
			Value:   rsa.DefaultBits,
			EnvVars: []string{"RSA_BITS"},
		},
		&cli.StringFlag{
			Name:    "seed",
			Usage:   "Derive all randomness from this seed (reproducible, insecure)",
			EnvVars: []string{"RSA_SEED"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (debug, info, warn, error)",
			Value:   "info",
			EnvVars: []string{"RSA_LOG_LEVEL"},
		},
	}
}

func newCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "keygen",
			Usage:  "Generate a keypair and print n, e and d in hexadecimal",
			Flags:  commonFlags(),
			Action: Keygen,
		},
		{
			Name:  "demo",
			Usage: "Generate a keypair and encrypt then decrypt a message",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "message",
					Aliases: []string{"m"},
					Usage:   "Message to encrypt; it must fit in a single block",
					Value:   defaultMessage,
					EnvVars: []string{"RSA_MESSAGE"},
				},
			}, commonFlags()...),
			Action: Demo,
		},
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "rsademo",
		Usage:     "Textbook RSA without padding (for teaching only)",
		Commands:  newCommands(),
		Writer:    out,
		ErrWriter: errOut,
	}
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return zerolog.Nop(), err
	}
	w := zerolog.ConsoleWriter{Out: c.App.ErrWriter, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func newManager(c *cli.Context, logger zerolog.Logger) (*rsa.RSAKeyManagerImpl, error) {
	cfg := rsa.DefaultConfig()
	cfg.Bits = c.Int("bits")
	cfg.Logger = logger
	if seed := c.String("seed"); seed != "" {
		cfg.Rand = sample.NewSeededReader([]byte(seed))
		logger.Warn().Msg("using seeded randomness, keys are reproducible")
	}

	ks := keystore.NewInMemoryKeystore(vault.NewInMemoryVault(), keyopts.NewInMemoryKeyOpts())
	return rsa.NewRSAKeyManager(ks, cfg)
}

func generate(c *cli.Context) (*rsa.RSAKeyManagerImpl, cs_rsa.RSAKey, zerolog.Logger, error) {
	logger, err := newLogger(c)
	if err != nil {
		return nil, nil, logger, err
	}
	mgr, err := newManager(c, logger)
	if err != nil {
		return nil, nil, logger, err
	}

	logger.Info().Int("bits", c.Int("bits")).Msg("generating keypair")
	start := time.Now()
	k, err := mgr.GenerateKey(c.Context, keyopts.NewOptions())
	if err != nil {
		return nil, nil, logger, err
	}
	logger.Info().Dur("took", time.Since(start)).Msg("keypair generated")

	return mgr, k, logger, nil
}

func printKey(w io.Writer, k cs_rsa.RSAKey) {
	kp := k.Keypair()
	fmt.Fprintf(w, "n (hex) = %s\n", kp.N().Text(16))
	fmt.Fprintf(w, "e (hex) = %s\n", kp.E().Text(16))
	fmt.Fprintf(w, "d (hex) = %s\n", kp.D().Text(16))
}

func Keygen(c *cli.Context) error {
	_, k, _, err := generate(c)
	if err != nil {
		return err
	}
	printKey(c.App.Writer, k)
	return nil
}

func Demo(c *cli.Context) error {
	mgr, k, logger, err := generate(c)
	if err != nil {
		return err
	}
	printKey(c.App.Writer, k)

	opts, err := keyopts.NewOptions().Set(keyopts.OptionID, k.ID())
	if err != nil {
		return err
	}

	msg := c.String("message")
	fmt.Fprintf(c.App.Writer, "\nmessage: %s\n", msg)

	ct, err := mgr.Encrypt(msg, opts)
	if err != nil {
		logger.Error().Err(err).Int("bytes", len(msg)).Msg("message does not fit, use a larger key")
		return err
	}
	fmt.Fprintf(c.App.Writer, "ciphertext (hex): %s\n", ct.Text(16))

	pt, err := mgr.Decrypt(ct, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "decrypted: %s\n", pt)
	return nil
}
