// Command admin registers a user against a running remind server.
// It prompts for the account details interactively and posts them to
// the public registration endpoint.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt + "\n> ")
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func main() {
	reader := bufio.NewReader(os.Stdin)

	addr, err := promptLine(reader, "Server address (default http://localhost:8000)")
	if err != nil {
		log.Fatalf("%v", err)
	}
	if addr == "" {
		addr = "http://localhost:8000"
	}

	username, err := promptLine(reader, "Enter username")
	if err != nil {
		log.Fatalf("%v", err)
	}

	email, err := promptLine(reader, "Enter email")
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println("Enter password")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println()

	body, err := json.Marshal(registerRequest{
		Username: username,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	url := strings.TrimRight(addr, "/") + "/auth/register"

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("registration failed: %s %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	fmt.Println("User registered successfully")
}
