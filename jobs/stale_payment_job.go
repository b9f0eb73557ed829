package jobs

import (
	"log"
	"time"

	"github.com/learnhub/learnhub_backend/database"
	"github.com/learnhub/learnhub_backend/models"
)

const pendingPaymentTTL = 24 * time.Hour

// CleanupStalePendingEnrollments removes pending enrollments whose
// checkout was abandoned more than a day ago. Completed enrollments
// are never touched.
func CleanupStalePendingEnrollments() {
	log.Println("Running job: CleanupStalePendingEnrollments...")

	cutoff := time.Now().Add(-pendingPaymentTTL)

	result := database.DB.
		Where("payment_status = ? AND enrolled_at < ?", models.PaymentStatusPending, cutoff).
		Delete(&models.Enrollment{})
	if result.Error != nil {
		log.Printf("Error cleaning up stale pending enrollments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Removed %d stale pending enrollment(s)", result.RowsAffected)
	}
}
