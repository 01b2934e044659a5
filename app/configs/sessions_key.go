package configs

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
)

type SessionKeys struct {
	AuthKey []byte
	EncKey  []byte
}

func LoadSessionKeysFromEnv() (*SessionKeys, error) {
	authKeyBase64 := LoadENV.AppAuthKey
	encKeyBase64 := LoadENV.AppEncKey

	if authKeyBase64 == "" {
		return nil, fmt.Errorf("APP_AUTH_KEY environment variable not set")
	}
	if encKeyBase64 == "" {
		return nil, fmt.Errorf("APP_ENC_KEY environment variable not set")
	}

	authKey, err := base64.URLEncoding.DecodeString(authKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_AUTH_KEY from Base64: %w", err)
	}
	encKey, err := base64.URLEncoding.DecodeString(encKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_ENC_KEY from Base64: %w", err)
	}

	if len(encKey) != 16 && len(encKey) != 24 && len(encKey) != 32 {
		return nil, fmt.Errorf("APP_ENC_KEY has invalid length %d after decoding. Must be 16, 24, or 32 bytes for AES encryption", len(encKey))
	}

	return &SessionKeys{
		AuthKey: authKey,
		EncKey:  encKey,
	}, nil
}

func GenerateAndPrintSessionKeys() error {
	fmt.Println("Generating new session keys...")

	authKey := securecookie.GenerateRandomKey(64)
	if authKey == nil {
		return fmt.Errorf("error: could not generate authentication key")
	}

	encKey := securecookie.GenerateRandomKey(32)
	if encKey == nil {
		return fmt.Errorf("error: could not generate encryption key")
	}

	fmt.Println("\n================================================")
	fmt.Println("Generated keys:")
	fmt.Printf("APP_AUTH_KEY=%s\n", base64.URLEncoding.EncodeToString(authKey))
	fmt.Printf("APP_ENC_KEY=%s\n", base64.URLEncoding.EncodeToString(encKey))
	fmt.Println("================================================")
	fmt.Println("Copy these lines into your .env file.")
	fmt.Println("REMINDER: regenerating keys invalidates existing sessions.")

	return nil
}
