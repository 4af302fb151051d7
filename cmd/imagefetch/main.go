package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// demo dish images, keyed by menu item id
var images = map[string]string{
	"1.jpg": "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400", // Burger
	"2.jpg": "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=400", // Coffee
	"3.jpg": "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=400", // Pizza
	"4.jpg": "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=400", // Pasta
	"5.jpg": "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?w=400", // Sandwich
	"6.jpg": "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400", // Fries
	"7.jpg": "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400", // Salad
	"8.jpg": "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=400",    // Ice Cream
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "imagefetch:", err)
		os.Exit(1)
	}
}

func run() error {
	dir := "images"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	client := &http.Client{Timeout: 30 * time.Second}

	for filename, url := range images {
		path := filepath.Join(dir, filename)

		if _, err := os.Stat(path); err == nil {
			fmt.Printf("skipped %s (already exists)\n", filename)
			continue
		}

		if err := download(client, url, path); err != nil {
			fmt.Fprintf(os.Stderr, "error downloading %s: %v\n", filename, err)
			continue
		}
		fmt.Printf("saved %s\n", filename)
	}

	abs, _ := filepath.Abs(dir)
	fmt.Println("images saved in:", abs)
	return nil
}

func download(client *http.Client, url, path string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
