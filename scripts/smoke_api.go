package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // Evaluation can take minutes, no timeout
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func decode(body []byte) map[string]interface{} {
	var out map[string]interface{}
	json.Unmarshal(body, &out)
	return out
}

func main() {
	color.Cyan("Starting Proposal Evaluation API Smoke Test\n")

	// 1. Evaluate a small inline proposal against an inline ToR
	color.Yellow("\n[EVALUATOR] 1. Evaluate proposal vs ToR")
	evalReq := map[string]interface{}{
		"user_id":   "smoke-user",
		"user_name": "Smoke Tester",
		"proposal_text_input": "We propose a 12-month program to improve literacy for 500 " +
			"children across 10 rural schools, with a budget of $50,000 covering teacher " +
			"training, reading materials, and quarterly assessments.",
		"tor_text_input": "The terms of reference require a literacy intervention reaching at " +
			"least 400 children within one year, including teacher capacity building and " +
			"measurable learning outcomes.",
	}
	resp, body, err := sendRequest("POST", "/evaluator/v1/evaluate", evalReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	evalResp := decode(body)
	prettyPrint(evalResp)

	sessionId := ""
	if data, ok := evalResp["data"].(map[string]interface{}); ok {
		sessionId, _ = data["session_id"].(string)
	}
	if sessionId == "" {
		color.Red("No session_id in evaluation response, aborting")
		os.Exit(1)
	}

	// 2. Ask a follow-up about the evaluation
	color.Yellow("\n[EVALUATOR] 2. Ask follow-up question")
	followupReq := map[string]interface{}{
		"user_id":    "smoke-user",
		"session_id": sessionId,
		"query":      "What is the most critical gap I should address first?",
	}
	resp, body, err = sendRequest("POST", "/evaluator/v1/followup", followupReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 3. List evaluation sessions
	color.Yellow("\n[EVALUATOR] 3. List sessions")
	resp, body, err = sendRequest("GET", "/evaluator/v1/sessions?user_id=smoke-user", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 4. Chat against the knowledge base
	color.Yellow("\n[CHATBOT] 4. Ask the knowledge-base chatbot")
	chatReq := map[string]interface{}{
		"user_id":  "smoke-user",
		"question": "What are best practices for measuring literacy program outcomes?",
	}
	resp, body, err = sendRequest("POST", "/chatbot/v1/chat", chatReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	chatResp := decode(body)
	prettyPrint(chatResp)

	chatSessionId := ""
	if data, ok := chatResp["data"].(map[string]interface{}); ok {
		chatSessionId, _ = data["session_id"].(string)
	}

	// 5. Fetch the chat history back
	if chatSessionId != "" {
		color.Yellow("\n[CHATBOT] 5. Fetch chat history")
		resp, body, err = sendRequest("GET", "/chatbot/v1/sessions/"+chatSessionId+"/history?user_id=smoke-user", nil)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Status: %s", resp.Status)
		prettyPrint(decode(body))
	}

	color.Cyan("\nSmoke test finished")
}
