package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aura-nw/marketplace-api/base/ptr"
	"github.com/aura-nw/marketplace-api/domain"
)

func TestAuctionConfigValid(t *testing.T) {
	req := require.New(t)

	start := time.Unix(1000, 0)
	end := time.Unix(2000, 0)

	cases := []struct {
		name string
		cfg  AuctionConfig
		want bool
	}{
		{
			name: "fixed price",
			cfg: AuctionConfig{
				Kind:       AuctionKindFixedPrice,
				FixedPrice: &FixedPriceConfig{Price: domain.Coin{Denom: "uaura", Amount: "100"}},
			},
			want: true,
		},
		{
			name: "fixed price with valid window",
			cfg: AuctionConfig{
				Kind: AuctionKindFixedPrice,
				FixedPrice: &FixedPriceConfig{
					Price:     domain.Coin{Denom: "uaura", Amount: "100"},
					StartTime: ptr.Time(start),
					EndTime:   ptr.Time(end),
				},
			},
			want: true,
		},
		{
			name: "zero price",
			cfg: AuctionConfig{
				Kind:       AuctionKindFixedPrice,
				FixedPrice: &FixedPriceConfig{Price: domain.Coin{Denom: "uaura", Amount: "0"}},
			},
			want: false,
		},
		{
			name: "malformed price",
			cfg: AuctionConfig{
				Kind:       AuctionKindFixedPrice,
				FixedPrice: &FixedPriceConfig{Price: domain.Coin{Denom: "uaura", Amount: "abc"}},
			},
			want: false,
		},
		{
			name: "start equal to end",
			cfg: AuctionConfig{
				Kind: AuctionKindFixedPrice,
				FixedPrice: &FixedPriceConfig{
					Price:     domain.Coin{Denom: "uaura", Amount: "100"},
					StartTime: ptr.Time(start),
					EndTime:   ptr.Time(start),
				},
			},
			want: false,
		},
		{
			name: "start after end",
			cfg: AuctionConfig{
				Kind: AuctionKindFixedPrice,
				FixedPrice: &FixedPriceConfig{
					Price:     domain.Coin{Denom: "uaura", Amount: "100"},
					StartTime: ptr.Time(end),
					EndTime:   ptr.Time(start),
				},
			},
			want: false,
		},
		{
			name: "missing fixed price body",
			cfg:  AuctionConfig{Kind: AuctionKindFixedPrice},
			want: false,
		},
		{
			name: "other kind is always rejected",
			cfg: AuctionConfig{
				Kind:  AuctionKindOther,
				Other: &OtherConfig{HandlerAddress: "0xabc", Version: 1, RawConfig: "{}"},
			},
			want: false,
		},
		{
			name: "unknown kind",
			cfg:  AuctionConfig{Kind: AuctionKind("dutch")},
			want: false,
		},
	}

	for _, c := range cases {
		req.Equal(c.want, c.cfg.Valid(), c.name)
	}
}

func TestListingIsExpired(t *testing.T) {
	req := require.New(t)

	end := time.Unix(2000, 0)
	l := Listing{
		Status: StatusOngoing,
		AuctionConfig: AuctionConfig{
			Kind: AuctionKindFixedPrice,
			FixedPrice: &FixedPriceConfig{
				Price:   domain.Coin{Denom: "uaura", Amount: "1"},
				EndTime: ptr.Time(end),
			},
		},
	}

	req.False(l.IsExpired(end.Add(-time.Second)))
	req.True(l.IsExpired(end))
	req.True(l.IsExpired(end.Add(time.Second)))

	l.Status = StatusSold
	req.False(l.IsExpired(end.Add(time.Second)))

	noEnd := Listing{
		Status: StatusOngoing,
		AuctionConfig: AuctionConfig{
			Kind:       AuctionKindFixedPrice,
			FixedPrice: &FixedPriceConfig{Price: domain.Coin{Denom: "uaura", Amount: "1"}},
		},
	}
	req.False(noEnd.IsExpired(end))
}
