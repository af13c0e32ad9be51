package live

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	campaignModel "khataman_backend/internals/features/campaigns/model"
	claimModel "khataman_backend/internals/features/claims/model"
	groupModel "khataman_backend/internals/features/groups/model"
	"khataman_backend/internals/gateway"
)

// fakeFetcher mengembalikan snapshot yang diprogram per pemanggilan.
type fakeFetcher struct {
	mu    sync.Mutex
	queue []fetchResult
	last  fetchResult
}

type fetchResult struct {
	snap gateway.Snapshot
	err  error
}

func (f *fakeFetcher) push(snap gateway.Snapshot, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, fetchResult{snap: snap, err: err})
}

func (f *fakeFetcher) FetchSnapshot(ctx context.Context) (gateway.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queue) > 0 {
		f.last = f.queue[0]
		f.queue = f.queue[1:]
	}
	return f.last.snap, f.last.err
}

func fullSnapshot() gateway.Snapshot {
	return gateway.Snapshot{
		Campaigns: []campaignModel.CampaignModel{{ID: uuid.New(), Name: "Khataman", IsActive: true}},
		Groups:    []groupModel.GroupModel{{ID: uuid.New(), Name: "Entitas"}},
		Parts:     nil,
		Claims:    []claimModel.ClaimModel{},
	}
}

func TestHubStartLoadsInitialSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{}
	snap := fullSnapshot()
	snap.Parts = nil
	fetcher.push(snap, nil)

	hub := NewHub(fetcher)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("Start gagal: %v", err)
	}
	if len(hub.Snapshot().Campaigns) != 1 {
		t.Error("snapshot awal tidak termuat")
	}
	if hub.Version() == 0 {
		t.Error("versi harus naik setelah Start")
	}
}

func TestHubStartPropagatesError(t *testing.T) {
	fetcher := &fakeFetcher{}
	fetcher.push(gateway.Snapshot{}, errors.New("db mati"))

	hub := NewHub(fetcher)
	if err := hub.Start(context.Background()); err == nil {
		t.Fatal("Start harus gagal bila fetch awal gagal")
	}
}

func TestHubRefreshReplacesCollections(t *testing.T) {
	fetcher := &fakeFetcher{}
	fetcher.push(fullSnapshot(), nil)
	hub := NewHub(fetcher)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("Start gagal: %v", err)
	}

	next := fullSnapshot()
	next.Claims = []claimModel.ClaimModel{{ID: uuid.New(), JuzNumber: 3}}
	fetcher.push(next, nil)

	hub.Refresh(context.Background())

	if got := hub.Snapshot().Claims; len(got) != 1 || got[0].JuzNumber != 3 {
		t.Errorf("klaim tidak terganti: %+v", got)
	}
}

// Kegagalan parsial: koleksi yang gagal (nil) tidak menimpa data lama,
// koleksi yang berhasil tetap diterapkan.
func TestHubRefreshKeepsStaleOnPartialFailure(t *testing.T) {
	fetcher := &fakeFetcher{}
	initial := fullSnapshot()
	initial.Claims = []claimModel.ClaimModel{{ID: uuid.New(), JuzNumber: 7}}
	fetcher.push(initial, nil)

	hub := NewHub(fetcher)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("Start gagal: %v", err)
	}

	partial := gateway.Snapshot{
		Groups: []groupModel.GroupModel{{ID: uuid.New(), Name: "Regional 1"}},
		// Campaigns/Parts/Claims nil = query gagal
	}
	fetcher.push(partial, errors.New("klaim timeout"))

	hub.Refresh(context.Background())

	snap := hub.Snapshot()
	if len(snap.Claims) != 1 || snap.Claims[0].JuzNumber != 7 {
		t.Error("klaim lama harus dipertahankan saat query klaim gagal")
	}
	if len(snap.Campaigns) != 1 {
		t.Error("kampanye lama harus dipertahankan")
	}
	if len(snap.Groups) != 1 || snap.Groups[0].Name != "Regional 1" {
		t.Error("kelompok yang berhasil di-fetch harus diterapkan")
	}
}

// Event perubahan memicu refresh dan subscriber diberi tahu.
func TestHubBroadcastOnRefresh(t *testing.T) {
	fetcher := &fakeFetcher{}
	fetcher.push(fullSnapshot(), nil)
	hub := NewHub(fetcher)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("Start gagal: %v", err)
	}

	versions, cancel := hub.Subscribe()
	defer cancel()

	before := hub.Version()
	hub.Refresh(context.Background())

	select {
	case v := <-versions:
		if v <= before {
			t.Errorf("versi broadcast %d harus > %d", v, before)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber tidak menerima broadcast")
	}
}

func TestHubSubscribeCancelStopsDelivery(t *testing.T) {
	fetcher := &fakeFetcher{}
	fetcher.push(fullSnapshot(), nil)
	hub := NewHub(fetcher)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("Start gagal: %v", err)
	}

	versions, cancel := hub.Subscribe()
	cancel()
	hub.Refresh(context.Background())

	select {
	case v, ok := <-versions:
		if ok {
			t.Errorf("subscriber yang dibatalkan masih menerima versi %d", v)
		}
	case <-time.After(50 * time.Millisecond):
		// tidak ada kiriman, sesuai harapan
	}
}

// Subscriber lambat tidak menahan broadcaster; versi antara boleh hilang.
func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	fetcher := &fakeFetcher{}
	fetcher.push(fullSnapshot(), nil)
	hub := NewHub(fetcher)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("Start gagal: %v", err)
	}

	versions, cancel := hub.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			hub.Refresh(context.Background())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast memblokir pada subscriber lambat")
	}

	// Minimal versi terakhir sampai.
	select {
	case <-versions:
	case <-time.After(time.Second):
		t.Fatal("tidak ada versi yang sampai ke subscriber")
	}
}
