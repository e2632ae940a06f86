// Package main provides lockscript, a tool that converts addresses of the
// supported Bitcoin-family chains into locking scripts and back.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klingon-exchange/lockscript/internal/address"
	"github.com/klingon-exchange/lockscript/internal/chain"
	"github.com/klingon-exchange/lockscript/internal/config"
	"github.com/klingon-exchange/lockscript/internal/script"
	"github.com/klingon-exchange/lockscript/pkg/helpers"
	"github.com/klingon-exchange/lockscript/pkg/logging"
)

var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

const usage = `usage: lockscript [flags] <command> [args]

commands:
  decode <address>             print the locking script an address pays to
  encode [-type T] [-hash] <hex>
                               encode a public key, redeem script or hash
  classify <script-hex>        identify a standard locking script
  htlc -secret-hash H -receiver K -sender K -timeout N
                               build a hash time-locked redeem script and its address
  chains                       list the supported chains
  init-config <path>           write a default config file
  version                      print the version

flags:
`

// errUsage marks command-line mistakes; main prints usage for them.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			if err != errUsage {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(2)
		}
		logging.Fatal("Command failed", "error", err)
	}
}

// app carries what every command needs.
type app struct {
	out      io.Writer
	log      *logging.Logger
	registry *chain.Registry
	cfg      *config.Config
	params   *chain.Params
	net      chain.Network
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lockscript", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		symbol     = fs.String("chain", "BTC", "Chain symbol (BTC, LTC, DOGE, DASH, RVN, BCH)")
		testnet    = fs.Bool("testnet", false, "Use testnet parameters, overrides config")
		configFile = fs.String("config", "", "Config file path (default: built-in defaults)")
		logLevel   = fs.String("log-level", "", "Log level (debug, info, warn, error), overrides config")
	)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *logLevel != "" {
		if _, err := logging.ParseLevelStrict(*logLevel); err != nil {
			return err
		}
		cfg.Logging.Level = *logLevel
	}
	if *testnet {
		cfg.Network = chain.Testnet
	}

	log := logging.New(&logging.Config{
		Level:      cfg.Logging.Level,
		TimeFormat: time.TimeOnly,
		Output:     stderr,
	})
	logging.SetDefault(log)

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	a := &app{
		out:      stdout,
		log:      log,
		registry: chain.DefaultRegistry(),
		cfg:      cfg,
		net:      cfg.Network,
	}

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "chains":
		return a.chains()
	case "init-config":
		return a.initConfig(cmdArgs)
	case "version":
		fmt.Fprintf(stdout, "lockscript %s (commit: %s)\n", version, commit)
		return nil
	}

	params, ok := a.registry.Get(*symbol, a.net)
	if !ok {
		return fmt.Errorf("unsupported chain %s on %s", *symbol, a.net)
	}
	a.params = params
	log.Debug("Chain selected", "chain", params, "formats", cfg.AddressFormats(params.Symbol, params))

	switch cmd {
	case "decode":
		return a.decode(cmdArgs)
	case "encode":
		return a.encode(cmdArgs, stderr)
	case "classify":
		return a.classify(cmdArgs)
	case "htlc":
		return a.htlc(cmdArgs, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return errUsage
	}
}

func (a *app) resolver() (*address.Resolver, error) {
	return address.NewResolver(a.params, a.cfg.AddressFormats(a.params.Symbol, a.params)...)
}

func (a *app) decode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: decode <address>", errUsage)
	}
	r, err := a.resolver()
	if err != nil {
		return err
	}

	ls, err := r.LockingScript(args[0])
	if err != nil {
		a.log.Warn("No decoder accepted address", "chain", a.params, "address", args[0])
		return err
	}
	a.printScript(ls)
	return nil
}

func (a *app) encode(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		kindName = fs.String("type", string(a.params.DefaultAddressType), "Script type (p2pkh, p2sh, p2wpkh, p2wsh, p2pk)")
		isHash   = fs.Bool("hash", false, "Input is a key hash or script hash")
	)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: encode [-type T] [-hash] <hex>", errUsage)
	}

	kind, err := script.ParseKind(*kindName)
	if err != nil {
		return err
	}
	input, err := helpers.HexToBytes(fs.Arg(0))
	if err != nil {
		return err
	}

	if kind == script.P2PK {
		ls, err := address.PayToPubKey(input)
		if err != nil {
			return err
		}
		a.printScript(ls)
		return nil
	}

	r, err := a.resolver()
	if err != nil {
		return err
	}

	var (
		addr string
		ls   *script.LockingScript
	)
	if *isHash {
		addr, ls, err = r.EncodeHash(input, kind)
	} else {
		addr, ls, err = r.Encode(input, kind)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "address: %s\n", addr)
	a.printScript(ls)
	return nil
}

func (a *app) classify(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: classify <script-hex>", errUsage)
	}
	data, err := helpers.HexToBytes(args[0])
	if err != nil {
		return err
	}

	ls, err := script.Classify(data)
	if err != nil {
		return err
	}
	a.printScript(ls)

	r, err := a.resolver()
	if err != nil {
		return err
	}
	if addr, _, err := r.EncodeHash(ls.KeyHash, ls.Type.Kind); err == nil {
		fmt.Fprintf(a.out, "address: %s\n", addr)
	} else {
		a.log.Debug("Script has no address form", "chain", a.params, "type", ls.Type.Kind, "error", err)
	}
	return nil
}

func (a *app) htlc(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("htlc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		secretHash = fs.String("secret-hash", "", "SHA-256 of the secret (hex)")
		receiver   = fs.String("receiver", "", "Compressed public key that claims with the secret (hex)")
		sender     = fs.String("sender", "", "Compressed public key that refunds after the timeout (hex)")
		timeout    = fs.Uint("timeout", 144, "Relative timelock in blocks")
	)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	hash, err := helpers.HexToBytes(*secretHash)
	if err != nil {
		return fmt.Errorf("secret-hash: %w", err)
	}
	receiverKey, err := helpers.HexToBytes(*receiver)
	if err != nil {
		return fmt.Errorf("receiver: %w", err)
	}
	senderKey, err := helpers.HexToBytes(*sender)
	if err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	if *timeout > script.MaxCSVBlocks {
		return fmt.Errorf("timeout %d exceeds %d blocks", *timeout, script.MaxCSVBlocks)
	}

	redeem, err := script.HashTimeLock(hash, receiverKey, senderKey, uint32(*timeout))
	if err != nil {
		return err
	}

	kind := script.P2SH
	if a.params.SupportsSegWit {
		kind = script.P2WSH
	}
	r, err := a.resolver()
	if err != nil {
		return err
	}
	addr, ls, err := r.Encode(redeem, kind)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "address: %s\n", addr)
	a.printScript(ls)
	return nil
}

func (a *app) chains() error {
	for _, symbol := range a.registry.List() {
		params := a.registry.MustGet(symbol, a.net)
		formats := make([]string, 0, len(params.AddressFormats))
		for _, f := range a.cfg.AddressFormats(symbol, params) {
			formats = append(formats, string(f))
		}
		hrp := params.Bech32HRP
		if hrp == "" {
			hrp = "-"
		}
		fmt.Fprintf(a.out, "%-5s %-20s p2pkh=0x%02x p2sh=0x%02x hrp=%-5s dust=%s formats=%s\n",
			symbol, params.Name, params.PubKeyHashAddrID, params.ScriptHashAddrID, hrp,
			helpers.FormatAmount(params.DustRelayFee, helpers.SatoshiDecimals), strings.Join(formats, ","))
	}
	return nil
}

func (a *app) initConfig(args []string) error {
	path := config.FileName
	if len(args) > 0 {
		path = args[0]
	}
	cfg := config.DefaultConfig()
	cfg.Network = a.net
	if err := cfg.Save(path); err != nil {
		return err
	}
	a.log.Info("Config written", "path", path)
	return nil
}

func (a *app) printScript(ls *script.LockingScript) {
	fmt.Fprintf(a.out, "type: %s\n", ls.Type.Kind)
	fmt.Fprintf(a.out, "hash: %s\n", helpers.BytesToHex(ls.KeyHash))
	fmt.Fprintf(a.out, "script: %s\n", ls.Hex())
	if len(ls.Type.RedeemScript) > 0 {
		fmt.Fprintf(a.out, "redeem_script: %s\n", helpers.BytesToHex(ls.Type.RedeemScript))
	}
	if ls.Spendable.Kind != script.SpendableNone {
		fmt.Fprintf(a.out, "spendable: %s %s\n", ls.Spendable.Kind, helpers.BytesToHex(ls.Spendable.Data))
	}
}
