package commands

import (
	"encoding/json"
	"fmt"
)

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// envelope is the single output shape of the CLI. Exactly one of the two
// fields is ever set.
type envelope struct {
	Result any        `json:"result,omitempty"`
	Error  *errorBody `json:"error,omitempty"`
}

func printResult(v any) error {
	b, err := json.MarshalIndent(envelope{Result: v}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func printError(err error) {
	b, marshalErr := json.MarshalIndent(envelope{Error: &errorBody{Code: 1, Message: err.Error()}}, "", "  ")
	if marshalErr != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println(string(b))
}
