//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
)

// Ручная проверка сценария переноса родственника: создаёт выгрузку из трёх
// жителей со связью 1<->2, затем PATCH меняет множество жителя 1 на {3}
// и печатает итоговое состояние всех жителей.
//
//	go run scripts/smoke_patch.go -addr http://localhost:8080

type citizen struct {
	UnitID    int64   `json:"unit_id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Town      string  `json:"town"`
	Street    string  `json:"street"`
	Building  string  `json:"building"`
	Apartment int64   `json:"apartment"`
	Relatives []int64 `json:"relatives"`
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "service base URL")
	flag.Parse()

	base := *addr + "/api/v1"

	batch := map[string]interface{}{
		"citizens": []citizen{
			{UnitID: 1, Name: "Иванов Иван Иванович", Date: "1986-11-28", Type: "offer",
				Town: "Москва", Street: "Льва Толстого", Building: "16к7стр5", Apartment: 7,
				Relatives: []int64{2}},
			{UnitID: 2, Name: "Иванов Сергей Иванович", Date: "1997-04-17", Type: "offer",
				Town: "Москва", Street: "Льва Толстого", Building: "16к7стр5", Apartment: 7,
				Relatives: []int64{1}},
			{UnitID: 3, Name: "Романова Мария Леонидовна", Date: "1986-11-13", Type: "category",
				Town: "Керчь", Street: "Иосифа Бродского", Building: "2", Apartment: 11,
				Relatives: []int64{}},
		},
	}

	var created struct {
		Data struct {
			ImportID int64 `json:"import_id"`
		} `json:"data"`
	}
	post(base+"/imports", batch, &created)
	importID := created.Data.ImportID
	log.Printf("import created: %d", importID)

	patch := map[string]interface{}{"relatives": []int64{3}}
	var patched json.RawMessage
	do(http.MethodPatch, fmt.Sprintf("%s/imports/%d/citizens/1", base, importID), patch, &patched)
	log.Printf("patched citizen 1: %s", patched)

	var listed json.RawMessage
	do(http.MethodGet, fmt.Sprintf("%s/imports/%d/citizens", base, importID), nil, &listed)
	log.Printf("citizens after patch: %s", listed)
}

func post(url string, body, out interface{}) {
	do(http.MethodPost, url, body, out)
}

func do(method, url string, body, out interface{}) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			log.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		log.Fatalf("%s %s: %d %s", method, url, resp.StatusCode, raw)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			log.Fatalf("decode response: %v (%s)", err, raw)
		}
	}
}
