package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"io.mapleapps.campquest/internal/camp"
	"io.mapleapps.campquest/internal/campstore"
	firebaseutil "io.mapleapps.campquest/internal/firebase"
)

// Seeds the Firestore camps collection from a JSON file of camp records.
// Development tooling; run against an emulator or a dev project.
func main() {
	dataFile := flag.String("file", "campdata.json", "path to the camp records JSON file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	raw, err := os.ReadFile(*dataFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *dataFile, err)
	}

	var records []camp.CampRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Fatalf("Failed to parse camp data: %v", err)
	}

	now := time.Now()
	for i := range records {
		if records[i].CreatedAt.IsZero() {
			records[i].CreatedAt = now
		}
	}

	firebaseApp, err := firebaseutil.InitFirebase()
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	ctx := context.Background()
	firestoreClient, err := firebaseutil.GetFirestoreClient(ctx, firebaseApp)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer firestoreClient.Close()

	if err := campstore.Seed(ctx, firestoreClient, records); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d camp records", len(records))
}
