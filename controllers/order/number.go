package orderControllers

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/velora-store/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var orderNumberPattern = regexp.MustCompile(`^(\d{4})-(\d{5})$`)

// nextOrderNumber allocates the next YYYY-NNNNN number from the
// per-year counter row. The row stays locked for the rest of the order
// transaction, so concurrent checkouts get distinct numbers. The
// unique index on Order.Number is the backstop.
func nextOrderNumber(tx *gorm.DB, now time.Time) (string, error) {
	year := now.Year()

	var counter models.OrderCounter
	err := forUpdate(tx).First(&counter, "year = ?", year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First order of the year: seed the counter from the highest
		// number already assigned so numbering stays continuous with
		// pre-counter data. A concurrent checkout may insert the row
		// first, hence DoNothing + reload under lock.
		seq, seedErr := highestAssignedSeq(tx, year)
		if seedErr != nil {
			return "", seedErr
		}
		counter = models.OrderCounter{Year: year, Seq: seq}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&counter).Error; err != nil {
			return "", fmt.Errorf("create order counter: %w", err)
		}
		if err := forUpdate(tx).First(&counter, "year = ?", year).Error; err != nil {
			return "", fmt.Errorf("reload order counter: %w", err)
		}
	} else if err != nil {
		return "", fmt.Errorf("load order counter: %w", err)
	}

	counter.Seq++
	if err := tx.Model(&models.OrderCounter{}).Where("year = ?", year).
		Update("seq", counter.Seq).Error; err != nil {
		return "", fmt.Errorf("bump order counter: %w", err)
	}
	return fmt.Sprintf("%d-%05d", year, counter.Seq), nil
}

// highestAssignedSeq parses the numeric suffix of the most recently
// created order of the year; zero when the year has no orders yet.
func highestAssignedSeq(tx *gorm.DB, year int) (int, error) {
	prefix := fmt.Sprintf("%d-", year)

	var last models.Order
	err := tx.Where("number LIKE ?", prefix+"%").
		Order("created_at DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find last order of %d: %w", year, err)
	}

	m := orderNumberPattern.FindStringSubmatch(last.Number)
	if m == nil {
		return 0, nil
	}
	seq, _ := strconv.Atoi(m[2])
	return seq, nil
}
