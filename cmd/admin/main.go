package main

import (
	"fmt"
	"log"
	"os"

	"civictrack/backend/internal/complaint"
	"civictrack/backend/internal/models"
	"civictrack/backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI
	service := complaint.NewService(storageSvc)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "list":
		listComplaints(service)
	case "assign":
		if len(os.Args) != 5 {
			fmt.Println("Usage: admin assign <complaint_id> <employee_name> <employee_contact>")
			os.Exit(1)
		}
		updated, err := service.AssignEmployee(os.Args[2], models.EmployeeRequest{
			Name:    os.Args[3],
			Contact: os.Args[4],
		})
		if err != nil {
			log.Fatalf("Error assigning employee: %v", err)
		}
		fmt.Printf("Complaint %s assigned to %s (%s).\n", updated.ID, updated.AssignedEmployeeName, updated.Status)
	case "resolve":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin resolve <complaint_id> <resolved_image_url>")
			os.Exit(1)
		}
		updated, err := service.Resolve(os.Args[2], models.ResolveRequest{ResolvedImageURL: os.Args[3]})
		if err != nil {
			log.Fatalf("Error resolving complaint: %v", err)
		}
		fmt.Printf("Complaint %s resolved at %s.\n", updated.ID, updated.ResolvedAt.Format("2006-01-02 15:04"))
	case "status":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin status <complaint_id> <status>")
			os.Exit(1)
		}
		updated, err := service.UpdateStatus(os.Args[2], os.Args[3])
		if err != nil {
			log.Fatalf("Error updating status: %v", err)
		}
		fmt.Printf("Complaint %s is now %q.\n", updated.ID, updated.Status)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

// listComplaints друкує скарги у порядку адміністративного пріоритету.
func listComplaints(service *complaint.Service) {
	scored, err := service.GetAdminSortedComplaints()
	if err != nil {
		log.Fatalf("Error listing complaints: %v", err)
	}

	for _, sc := range scored {
		fmt.Printf("%.2f  [%-11s]  %-24s  upvotes=%-3d  %s\n",
			sc.AdminScore, sc.Status, sc.Category, sc.Upvotes, sc.ID)
	}
}
