package live

import (
	"context"
	"log"
	"sync"

	"khataman_backend/internals/gateway"
)

// Fetcher adalah sisi baca gateway yang dibutuhkan hub.
type Fetcher interface {
	FetchSnapshot(ctx context.Context) (gateway.Snapshot, error)
}

// Hub memegang read-model sesi: satu snapshot replace-all yang hanya ditulis
// oleh hub sendiri. Event perubahan klaim memicu Refresh penuh, bukan diff;
// skala datanya kecil dan frekuensinya mengikuti tempo manusia.
type Hub struct {
	fetch Fetcher

	mu      sync.RWMutex
	snap    gateway.Snapshot
	version uint64

	subMu sync.Mutex
	subs  map[chan uint64]struct{}
}

func NewHub(fetch Fetcher) *Hub {
	return &Hub{
		fetch: fetch,
		subs:  make(map[chan uint64]struct{}),
	}
}

// Start melakukan fetch awal. Berbeda dengan Refresh, kegagalan di sini
// dikembalikan ke pemanggil: sesi tidak boleh mulai tanpa snapshot pertama.
func (h *Hub) Start(ctx context.Context) error {
	snap, err := h.fetch.FetchSnapshot(ctx)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.snap = snap
	h.version++
	h.mu.Unlock()
	return nil
}

// Refresh mengambil ulang keempat koleksi dan menerapkannya per koleksi:
// hasil yang gagal (nil) tidak menimpa data lama, jadi tampilan tidak pernah
// lebih buruk dari "basi tapi valid". Konsumen diberi tahu lewat broadcast.
func (h *Hub) Refresh(ctx context.Context) {
	snap, err := h.fetch.FetchSnapshot(ctx)
	if err != nil {
		log.Printf("⚠️ refresh snapshot sebagian gagal: %v", err)
	}

	h.mu.Lock()
	if snap.Campaigns != nil {
		h.snap.Campaigns = snap.Campaigns
	}
	if snap.Groups != nil {
		h.snap.Groups = snap.Groups
	}
	if snap.Parts != nil {
		h.snap.Parts = snap.Parts
	}
	if snap.Claims != nil {
		h.snap.Claims = snap.Claims
	}
	h.version++
	version := h.version
	h.mu.Unlock()

	h.broadcast(version)
}

// Snapshot mengembalikan potret saat ini. Slice di dalamnya hanya diganti
// utuh dan tidak pernah dimutasi di tempat, jadi aman dibaca tanpa salinan.
func (h *Hub) Snapshot() gateway.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

func (h *Hub) Version() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.version
}

// Subscribe mendaftarkan kanal notifikasi versi untuk stream SSE.
// Kanal ber-buffer satu; subscriber lambat kehilangan versi antara, bukan
// menahan broadcaster. Mereka toh mengambil snapshot terbaru saat bangun.
func (h *Hub) Subscribe() (<-chan uint64, func()) {
	ch := make(chan uint64, 1)
	h.subMu.Lock()
	h.subs[ch] = struct{}{}
	h.subMu.Unlock()

	cancel := func() {
		h.subMu.Lock()
		delete(h.subs, ch)
		h.subMu.Unlock()
	}
	return ch, cancel
}

func (h *Hub) broadcast(version uint64) {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- version:
		default:
			// buffer penuh: subscriber akan melihat versi lebih baru.
		}
	}
}
