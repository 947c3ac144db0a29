package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vitalvas/gochap"
	"github.com/vitalvas/gochap/pkg/digest"
)

func main() {
	algorithm := flag.String("algorithm", "md5", "Digest algorithm (md5, sha1, sha256)")
	identifier := flag.Uint("id", 1, "CHAP identifier (0-255)")
	secret := flag.String("secret", "", "Shared secret")
	challenge := flag.String("challenge", "", "Challenge value in hex")
	verify := flag.String("verify", "", "Response value in hex to verify instead of computing")
	generate := flag.Int("generate", 0, "Generate a random challenge of this length and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -secret <secret> -challenge <hex> [-algorithm <name>] [-id <n>]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -generate 16\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -id 1 -secret s3cret -challenge aabbcc\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -id 1 -secret s3cret -challenge aabbcc -verify 8e2f...\n", os.Args[0])
	}

	flag.Parse()

	if *generate > 0 {
		value, err := gochap.GenerateChallenge(*generate)
		if err != nil {
			log.Fatalf("Failed to generate challenge: %v", err)
		}
		fmt.Println(hex.EncodeToString(value))
		return
	}

	if *secret == "" || *challenge == "" {
		fmt.Fprintf(os.Stderr, "Error: -secret and -challenge are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if *identifier > 255 {
		fmt.Fprintf(os.Stderr, "Error: -id must be 0-255\n\n")
		flag.Usage()
		os.Exit(1)
	}

	alg, err := digest.Lookup(*algorithm)
	if err != nil {
		log.Fatalf("Unknown algorithm %q (have: %v)", *algorithm, digest.Names())
	}

	challengeBytes, err := hex.DecodeString(*challenge)
	if err != nil {
		log.Fatalf("Invalid challenge hex: %v", err)
	}

	if *verify != "" {
		responseBytes, err := hex.DecodeString(*verify)
		if err != nil {
			log.Fatalf("Invalid response hex: %v", err)
		}

		ok, err := gochap.Verify(alg, byte(*identifier), []byte(*secret), challengeBytes, responseBytes)
		if err != nil {
			log.Fatalf("Verification failed: %v", err)
		}

		if ok {
			fmt.Println("response valid")
			return
		}
		fmt.Println("response INVALID")
		os.Exit(1)
	}

	response, err := gochap.Respond(alg, byte(*identifier), []byte(*secret), challengeBytes)
	if err != nil {
		log.Fatalf("Failed to compute response: %v", err)
	}

	fmt.Println(hex.EncodeToString(response))
}
