package command

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/datasources/mocks"
	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordBehavior_Execute(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		req         RecordBehaviorRequest
		products    []domain.Product
		fetchErr    error
		recordErr   error
		skipFetch   bool
		skipRecord  bool
		wantErr     error
		errContains string
	}{
		{
			name:     "identified_view_recorded",
			req:      RecordBehaviorRequest{UserID: "u1", ProductID: "p1", BehaviorType: domain.BehaviorTypeView},
			products: []domain.Product{{ID: "p1", IsActive: true}},
		},
		{
			name:     "anonymous_unknown_type_recorded",
			req:      RecordBehaviorRequest{ProductID: "p1", BehaviorType: "share"},
			products: []domain.Product{{ID: "p1", IsActive: true}},
		},
		{
			name:     "max_length_unknown_type_recorded",
			req:      RecordBehaviorRequest{ProductID: "p1", BehaviorType: domain.BehaviorType(strings.Repeat("x", 32))},
			products: []domain.Product{{ID: "p1", IsActive: true}},
		},
		{
			name:       "overlong_type_rejected",
			req:        RecordBehaviorRequest{ProductID: "p1", BehaviorType: domain.BehaviorType(strings.Repeat("x", 33))},
			skipFetch:  true,
			skipRecord: true,
			wantErr:    domain.ErrInvalidBehaviorType,
		},
		{
			name:       "inactive_product_not_found",
			req:        RecordBehaviorRequest{UserID: "u1", ProductID: "p1", BehaviorType: domain.BehaviorTypeView},
			products:   []domain.Product{{ID: "p1", IsActive: false}},
			skipRecord: true,
			wantErr:    domain.ErrNotFound,
		},
		{
			name:       "missing_product_not_found",
			req:        RecordBehaviorRequest{UserID: "u1", ProductID: "p1", BehaviorType: domain.BehaviorTypeView},
			products:   nil,
			skipRecord: true,
			wantErr:    domain.ErrNotFound,
		},
		{
			name:        "fetch_error",
			req:         RecordBehaviorRequest{UserID: "u1", ProductID: "p1", BehaviorType: domain.BehaviorTypeView},
			fetchErr:    errors.New("database error"),
			skipRecord:  true,
			errContains: "fetching product",
		},
		{
			name:        "record_error",
			req:         RecordBehaviorRequest{UserID: "u1", ProductID: "p1", BehaviorType: domain.BehaviorTypePurchase},
			products:    []domain.Product{{ID: "p1", IsActive: true}},
			recordErr:   errors.New("database error"),
			errContains: "recording behavior",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockProductFetcher(t)
			recorder := mocks.NewMockBehaviorRecorder(t)

			if !tc.skipFetch {
				fetcher.EXPECT().
					FetchProductsByID(mock.Anything, []string{tc.req.ProductID}).
					Return(tc.products, tc.fetchErr)
			}

			if !tc.skipRecord {
				recorder.EXPECT().
					RecordBehavior(mock.Anything, mock.MatchedBy(func(e domain.BehaviorEvent) bool {
						return e.ID != "" &&
							e.UserID == tc.req.UserID &&
							e.ProductID == tc.req.ProductID &&
							e.BehaviorType == tc.req.BehaviorType &&
							e.CreatedAt.Equal(now)
					})).
					Return(tc.recordErr)
			}

			cmd := NewRecordBehavior(fetcher, recorder)
			cmd.Now = func() time.Time { return now }

			event, err := cmd.Execute(context.Background(), tc.req)

			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			default:
				require.NoError(t, err)
				assert.NotEmpty(t, event.ID)
				assert.Equal(t, tc.req.ProductID, event.ProductID)
				assert.Equal(t, tc.req.BehaviorType, event.BehaviorType)
				assert.True(t, event.CreatedAt.Equal(now))
			}
		})
	}
}
