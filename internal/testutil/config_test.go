package testutil

import (
	"testing"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
)

func TestRequireRedis(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		wants bool
	}{
		{"nothing set", map[string]string{}, false},
		{"redis only", map[string]string{"TEST_REQUIRE_REDIS": "yes"}, true},
		{"all infra", map[string]string{"TEST_REQUIRE_INFRA": "1"}, true},
		{"falsy value", map[string]string{"TEST_REQUIRE_REDIS": "off"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_REQUIRE_REDIS", "")
			t.Setenv("TEST_REQUIRE_INFRA", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := requireRedis(); got != tt.wants {
				t.Errorf("requireRedis() = %v, want %v", got, tt.wants)
			}
		})
	}
}

func TestProductInputBuilderPassesAdvisoryChecks(t *testing.T) {
	in := NewProductInput().WithVariation("6", "WT-BLK", 2).Build()
	if errs := in.Validate(); len(errs) != 0 {
		t.Fatalf("expected a valid payload, got %v", errs)
	}
	if len(in.Variations) != 2 {
		t.Errorf("expected 2 variations, got %d", len(in.Variations))
	}

	// Builds do not share variation storage.
	b := NewProductInput()
	first := b.Build()
	b.WithVariation("6", "WT-BLK", 1)
	if len(first.Variations) != 1 {
		t.Errorf("earlier build changed: %v", first.Variations)
	}

	if errs := NewProductInput().WithoutVariations().Build().Validate(); len(errs) == 0 {
		t.Error("expected a product without variations to be rejected")
	}
}

func TestSupplierInputBuilder(t *testing.T) {
	in := NewSupplierInput().WithEmail("nope").Build()
	errs := in.Validate()
	if errs["email"] == "" {
		t.Errorf("expected an email error, got %v", errs)
	}
	if in.SupplierType != model.SupplierFactory {
		t.Errorf("SupplierType = %q", in.SupplierType)
	}
}

func TestRedisCandidates(t *testing.T) {
	t.Run("url wins", func(t *testing.T) {
		t.Setenv(RedisURLEnv, "redis://:pw@cache:6380/2")
		t.Setenv("REDIS_ADDR", "ignored:6379")
		got, err := redisCandidates()
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Addr != "cache:6380" || got[0].Password != "pw" {
			t.Errorf("unexpected candidates %+v", got)
		}
	})

	t.Run("bad url", func(t *testing.T) {
		t.Setenv(RedisURLEnv, "http://cache")
		if _, err := redisCandidates(); err == nil {
			t.Error("expected an error for a non-redis url")
		}
	})

	t.Run("addr then fallbacks", func(t *testing.T) {
		t.Setenv(RedisURLEnv, "")
		t.Setenv("REDIS_ADDR", "ci-redis:6379")
		got, _ := redisCandidates()
		if len(got) != 1 || got[0].Addr != "ci-redis:6379" {
			t.Errorf("unexpected candidates %+v", got)
		}

		t.Setenv("REDIS_ADDR", "")
		got, _ = redisCandidates()
		if len(got) != len(fallbackRedisAddrs) {
			t.Errorf("expected %d fallbacks, got %d", len(fallbackRedisAddrs), len(got))
		}
	})
}
