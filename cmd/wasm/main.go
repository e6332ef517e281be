//go:build js && wasm

// Flat-function wasm boundary for the stealth address core. Every
// exported function takes and returns hex strings or small JSON-shaped
// objects; backend errors are flattened to "error: ..." strings so the
// host side never sees Go error types.
package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rymnc/go-erc5564/pkg/stealth"
)

func main() {
	c := make(chan struct{})

	fmt.Println("go-erc5564 WASM Initialized")

	js.Global().Set("GoERC5564", map[string]interface{}{
		"GenerateKeyPair":        js.FuncOf(generateKeyPair),
		"BuildMetaAddress":       js.FuncOf(buildMetaAddress),
		"GenerateStealthAddress": js.FuncOf(generateStealthAddress),
		"FastCheck":              js.FuncOf(fastCheck),
		"Recover":                js.FuncOf(recover_),
	})

	<-c
}

func suiteFor(curveName string) (*stealth.Suite, string) {
	s, err := stealth.NewSuite(curveName)
	if err != nil {
		return nil, fmt.Sprintf("error: %v", err)
	}
	return s, ""
}

func scalarFromHex(s string) (*big.Int, string) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Sprintf("error: invalid scalar hex: %v", err)
	}
	return new(big.Int).SetBytes(b), ""
}

// generateKeyPair(curve) -> {priv, pub} (hex)
func generateKeyPair(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (curve)"
	}
	s, errStr := suiteFor(args[0].String())
	if errStr != "" {
		return errStr
	}

	kp, err := s.GenerateKeyPair()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return map[string]interface{}{
		"priv": hex.EncodeToString(kp.Priv.Bytes()),
		"pub":  hex.EncodeToString(kp.Pub.Bytes()),
	}
}

// buildMetaAddress(curve, spendPrivHex, viewPrivHex) -> encoded meta-address
func buildMetaAddress(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, spendPriv, viewPriv)"
	}
	s, errStr := suiteFor(args[0].String())
	if errStr != "" {
		return errStr
	}

	spendPriv, errStr := scalarFromHex(args[1].String())
	if errStr != "" {
		return errStr
	}
	viewPriv, errStr := scalarFromHex(args[2].String())
	if errStr != "" {
		return errStr
	}

	meta := stealth.BuildMetaAddress(s.KeyPairFromPrivate(spendPriv), s.KeyPairFromPrivate(viewPriv))
	return s.EncodeMetaAddress(meta)
}

// generateStealthAddress(curve, metaAddress) ->
// {stealthAddress, ephemeralPubKey, viewTag}
func generateStealthAddress(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, metaAddress)"
	}
	s, errStr := suiteFor(args[0].String())
	if errStr != "" {
		return errStr
	}

	meta, err := s.DecodeMetaAddress(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	ann, _, err := stealth.NewGenerator(s, nil).Generate(meta)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return map[string]interface{}{
		"stealthAddress":  ann.StealthAddress.Hex(),
		"ephemeralPubKey": hex.EncodeToString(ann.EphemeralPubKey),
		"viewTag":         int(ann.ViewTag),
	}
}

// fastCheck(curve, ephemeralPubKeyHex, viewTag, viewPrivHex) -> bool
func fastCheck(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (curve, ephemeralPubKey, viewTag, viewPriv)"
	}
	s, errStr := suiteFor(args[0].String())
	if errStr != "" {
		return errStr
	}

	ephemeral, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid ephemeral key hex: %v", err)
	}
	viewPriv, errStr := scalarFromHex(args[3].String())
	if errStr != "" {
		return errStr
	}

	ann := &stealth.Announcement{
		EphemeralPubKey: ephemeral,
		ViewTag:         byte(args[2].Int()),
	}
	ok, err := stealth.NewScanner(s, nil).FastCheck(ann, viewPriv)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return ok
}

// recover_(curve, ephemeralPubKeyHex, stealthAddressHex, viewTag,
// spendPrivHex, viewPrivHex) -> {stealthAddress, priv} or null
func recover_(this js.Value, args []js.Value) interface{} {
	if len(args) != 6 {
		return "error: expected 6 arguments"
	}
	s, errStr := suiteFor(args[0].String())
	if errStr != "" {
		return errStr
	}

	ephemeral, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid ephemeral key hex: %v", err)
	}
	spendPriv, errStr := scalarFromHex(args[4].String())
	if errStr != "" {
		return errStr
	}
	viewPriv, errStr := scalarFromHex(args[5].String())
	if errStr != "" {
		return errStr
	}

	ann := &stealth.Announcement{
		EphemeralPubKey: ephemeral,
		StealthAddress:  common.HexToAddress(args[2].String()),
		ViewTag:         byte(args[3].Int()),
	}
	rec, err := stealth.NewScanner(s, nil).Recover(ann, spendPriv, viewPriv)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	if rec == nil {
		return nil // not ours
	}
	return map[string]interface{}{
		"stealthAddress": rec.Address.Hex(),
		"priv":           hex.EncodeToString(rec.Priv.Bytes()),
	}
}
