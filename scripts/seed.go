// One-off: go run scripts/seed.go [base-url]
// Posts a demo board with a couple of mentoring cards against a running API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

func main() {
	base := "http://localhost:8080/api"
	if len(os.Args) > 1 {
		base = os.Args[1]
	}

	board := post(base+"/boards", map[string]any{
		"title":       "Mentoria Q3",
		"description": "Acompanhamento das sessões do trimestre",
	})
	columns := board["columns"].([]any)
	firstCol := int(columns[0].(map[string]any)["id"].(float64))

	card := post(base+"/cards", map[string]any{
		"columnId":     firstCol,
		"title":        "Sessão inicial - Ana",
		"menteeName":   "Ana",
		"menteeGoal":   "Assumir a liderança do time de produto até o fim do ano",
		"phase":        "descoberta",
		"energyMentee": 7,
		"energyMentor": 6,
		"type":         "projeto",
	})
	cardID := int(card["id"].(float64))

	post(fmt.Sprintf("%s/cards/%d/messages", base, cardID), map[string]any{
		"content":    "Alinhamos expectativas e fechamos o objetivo do trimestre.",
		"authorType": "mentor",
		"authorName": "Carlos",
	})
	post(fmt.Sprintf("%s/cards/%d/checklist", base, cardID), map[string]any{
		"content": "Mapear stakeholders do time de produto",
	})

	fmt.Printf("seeded board %v with card %d\n", board["id"], cardID)
}

func post(url string, body map[string]any) map[string]any {
	raw, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		panic(fmt.Sprintf("POST %s: %s", url, resp.Status))
	}
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		panic(err)
	}
	return out
}
