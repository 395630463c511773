package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

var client = &http.Client{Timeout: 5 * time.Second}

var skus = []string{"TSHIRT-RED-M", "MUG-WHITE", "EBOOK-GO", "GC-50"}

// Each shopper builds a cart and checks it out; some cards are declined
// so the rollback path gets traffic too.
func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(5) + 1 {
			wg.Go(shopperSession)
		}
		wg.Go(browse)
		wg.Wait()
		time.Sleep(200 * time.Millisecond)
	}
}

func shopperSession() {
	var cart struct {
		GUID string `json:"guid"`
	}
	status, err := call(http.MethodPost, "/carts", map[string]any{
		"shopper_id":    fmt.Sprintf("shopper-%d", rand.Intn(50)),
		"store_code":    "WEB",
		"currency":      "USD",
		"warehouse":     "MAIN",
		"shipping_cost": "5.00",
	}, &cart)
	if err != nil || status != http.StatusCreated {
		fmt.Println("create cart:", status, err)
		return
	}

	for range rand.Intn(3) + 1 {
		item := map[string]any{"sku_code": skus[rand.Intn(len(skus))], "quantity": rand.Intn(3) + 1}
		if status, err := call(http.MethodPost, "/carts/"+cart.GUID+"/items", item, nil); err != nil || status >= 300 {
			fmt.Println("add item:", status, err)
		}
	}

	token := "tok_visa"
	if rand.Intn(5) == 0 {
		token = "decline_insufficient_funds"
	}
	var order struct {
		Number string `json:"number"`
		Status string `json:"status"`
	}
	status, err = call(http.MethodPost, "/carts/"+cart.GUID+"/checkout", map[string]any{
		"payment": map[string]any{"method": "CREDIT_CARD", "card_token": token},
	}, &order)
	if err != nil {
		fmt.Println("checkout:", err)
		return
	}
	fmt.Println("checkout", cart.GUID, "->", status, order.Number, order.Status)
}

func browse() {
	paths := []string{
		"/orders?limit=20",
		"/orders?status=IN_PROGRESS",
		"/inventory/TSHIRT-RED-M/MAIN",
		"/inventory/MUG-WHITE/MAIN/audit?limit=10",
	}
	path := paths[rand.Intn(len(paths))]
	status, err := call(http.MethodGet, path, nil, nil)
	fmt.Println("GET", path, "->", status, err)
}

func call(method, path string, body, dst any) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}
	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if dst != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}
