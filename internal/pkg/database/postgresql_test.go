package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolConfigWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   PoolConfig
		want PoolConfig
	}{
		{
			name: "zero value gets all defaults",
			in:   PoolConfig{},
			want: PoolConfig{MaxConns: 25, MinConns: 5, PingTimeout: 5 * time.Second},
		},
		{
			name: "explicit values pass through",
			in:   PoolConfig{MaxConns: 40, MinConns: 10, PingTimeout: 2 * time.Second},
			want: PoolConfig{MaxConns: 40, MinConns: 10, PingTimeout: 2 * time.Second},
		},
		{
			name: "min clamps down to max",
			in:   PoolConfig{MaxConns: 3, MinConns: 8, PingTimeout: time.Second},
			want: PoolConfig{MaxConns: 3, MinConns: 3, PingTimeout: time.Second},
		},
		{
			name: "negative values fall back",
			in:   PoolConfig{MaxConns: -1, MinConns: -1, PingTimeout: -time.Second},
			want: PoolConfig{MaxConns: 25, MinConns: 5, PingTimeout: 5 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.withDefaults())
		})
	}
}
