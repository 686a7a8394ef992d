// Command kdfvec derives key material from command-line parameters and
// prints it as hex, for comparing this implementation against OpenSSL or
// other libraries.
//
// Usage:
//
//	kdfvec pbkdf2 -password secret -salt 73616c74 -iter 4096 -len 32
//	kdfvec bytestokey -cipher AES-256-CBC -digest SHA1 -password secret -salt 102213178d04cfdd -iter 1
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	pkcs5 "github.com/keywell/pkcs5-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: kdfvec <pbkdf2|bytestokey> [flags]")
	}

	switch os.Args[1] {
	case "pbkdf2":
		runPBKDF2(os.Args[2:])
	case "bytestokey":
		runBytesToKey(os.Args[2:])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func runPBKDF2(args []string) {
	fs := flag.NewFlagSet("pbkdf2", flag.ExitOnError)
	password := fs.String("password", "", "password")
	saltHex := fs.String("salt", "", "salt as hex")
	iter := fs.Int("iter", 1, "iteration count")
	keyLen := fs.Int("len", 32, "output length in bytes")
	fs.Parse(args)

	dk, err := pkcs5.PBKDF2HMACSHA1([]byte(*password), mustHex(*saltHex), *iter, *keyLen)
	if err != nil {
		fatal("derive: %v", err)
	}
	fmt.Printf("%x\n", dk)
}

func runBytesToKey(args []string) {
	fs := flag.NewFlagSet("bytestokey", flag.ExitOnError)
	cipherName := fs.String("cipher", "AES-256-CBC", "cipher name")
	digestName := fs.String("digest", "SHA1", "digest name")
	password := fs.String("password", "", "password")
	saltHex := fs.String("salt", "", "8-byte salt as hex, empty for none")
	iter := fs.Int("iter", 1, "iteration count")
	fs.Parse(args)

	cipher, err := pkcs5.ParseCipher(*cipherName)
	if err != nil {
		fatal("%v", err)
	}
	digest, err := pkcs5.ParseDigest(*digestName)
	if err != nil {
		fatal("%v", err)
	}

	pair, err := pkcs5.BytesToKey(cipher, digest, []byte(*password), mustHex(*saltHex), *iter)
	if err != nil {
		fatal("derive: %v", err)
	}
	fmt.Printf("key=%x\n", pair.Key)
	fmt.Printf("iv=%x\n", pair.IV)
}

func mustHex(s string) []byte {
	if s == "" {
		return nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		fatal("invalid hex %q: %v", s, err)
	}
	return b
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
