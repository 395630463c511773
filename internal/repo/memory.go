package repo

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"
)

type priceKey struct {
	sku      string
	currency string
}

type memoryState struct {
	orders    map[string][]byte
	shipments map[string]string
	carts     map[string][]byte
	inventory map[entities.InventoryKey]entities.InventoryRecord
	audits    []entities.InventoryAudit
	giftCerts map[string]entities.GiftCertificate
	ledger    map[string][]entities.GiftCertificateTransaction
	skus      map[string]entities.SKU
	prices    map[priceKey]entities.Price
}

func (s *memoryState) clone() *memoryState {
	ledger := make(map[string][]entities.GiftCertificateTransaction, len(s.ledger))
	for code, txs := range s.ledger {
		ledger[code] = slices.Clone(txs)
	}
	return &memoryState{
		orders:    maps.Clone(s.orders),
		shipments: maps.Clone(s.shipments),
		carts:     maps.Clone(s.carts),
		inventory: maps.Clone(s.inventory),
		audits:    slices.Clone(s.audits),
		giftCerts: maps.Clone(s.giftCerts),
		ledger:    ledger,
		skus:      maps.Clone(s.skus),
		prices:    maps.Clone(s.prices),
	}
}

// MemoryStore keeps everything in process. It implements the same store
// interfaces as the postgres repository and acts as its own trm.Manager:
// transactions are serialized and rolled back by restoring a snapshot.
type MemoryStore struct {
	txMu sync.Mutex

	mu    sync.Mutex
	state *memoryState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: &memoryState{
			orders:    make(map[string][]byte),
			shipments: make(map[string]string),
			carts:     make(map[string][]byte),
			inventory: make(map[entities.InventoryKey]entities.InventoryRecord),
			giftCerts: make(map[string]entities.GiftCertificate),
			ledger:    make(map[string][]entities.GiftCertificateTransaction),
			skus:      make(map[string]entities.SKU),
			prices:    make(map[priceKey]entities.Price),
		},
	}
}

type memoryTxKey struct{}

type memoryTx struct {
	store    *MemoryStore
	snapshot *memoryState
	done     bool
}

func (t *memoryTx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.txMu.Unlock()
	return nil
}

func (t *memoryTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Lock()
	t.store.state = t.snapshot
	t.store.mu.Unlock()
	t.store.txMu.Unlock()
	return nil
}

func (m *MemoryStore) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	m.txMu.Lock()
	m.mu.Lock()
	tx := &memoryTx{store: m, snapshot: m.state.clone()}
	m.mu.Unlock()
	return context.WithValue(ctx, memoryTxKey{}, tx), tx, nil
}

func (m *MemoryStore) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if _, ok := ctx.Value(memoryTxKey{}).(*memoryTx); ok {
		return callback(ctx)
	}

	ctx, tx, err := m.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

func (m *MemoryStore) locked(fn func(s *memoryState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.state)
}

// AddSku registers a catalog entry with its prices per currency.
func (m *MemoryStore) AddSku(sku entities.SKU, prices map[string]entities.Price) {
	m.locked(func(s *memoryState) {
		s.skus[sku.Code] = sku
		for currency, p := range prices {
			s.prices[priceKey{sku: sku.Code, currency: currency}] = p
		}
	})
}

func (m *MemoryStore) ResolveSku(_ context.Context, code string) (entities.SKU, error) {
	var (
		sku entities.SKU
		ok  bool
	)
	m.locked(func(s *memoryState) { sku, ok = s.skus[code] })
	if !ok {
		return entities.SKU{}, entities.ErrSkuNotFound
	}
	return sku, nil
}

func (m *MemoryStore) PriceFor(_ context.Context, sku entities.SKU, currency string, _ entities.PriceContext) (entities.Price, error) {
	var (
		price entities.Price
		ok    bool
	)
	m.locked(func(s *memoryState) { price, ok = s.prices[priceKey{sku: sku.Code, currency: currency}] })
	if !ok {
		return entities.Price{}, entities.ErrPriceNotFound
	}
	return price, nil
}

func (m *MemoryStore) SaveOrder(_ context.Context, o *entities.Order) error {
	data, err := o.Marshal()
	if err != nil {
		return err
	}
	m.locked(func(s *memoryState) {
		s.orders[o.Number] = data
		for _, sh := range o.Shipments {
			s.shipments[sh.Number] = o.Number
		}
	})
	return nil
}

func (m *MemoryStore) GetOrder(_ context.Context, number string) (*entities.Order, error) {
	var (
		data []byte
		ok   bool
	)
	m.locked(func(s *memoryState) { data, ok = s.orders[number] })
	if !ok {
		return nil, entities.ErrOrderNotFound
	}
	var o entities.Order
	if err := o.Unmarshal(data); err != nil {
		return nil, err
	}
	return &o, nil
}

func (m *MemoryStore) GetOrderByShipment(ctx context.Context, shipmentNumber string) (*entities.Order, error) {
	var (
		number string
		ok     bool
	)
	m.locked(func(s *memoryState) { number, ok = s.shipments[shipmentNumber] })
	if !ok {
		return nil, entities.ErrShipmentNotFound
	}
	return m.GetOrder(ctx, number)
}

func (m *MemoryStore) FindOrders(ctx context.Context, criteria entities.OrderCriteria) ([]*entities.Order, error) {
	var numbers []string
	m.locked(func(s *memoryState) {
		for number := range s.orders {
			numbers = append(numbers, number)
		}
	})

	result := []*entities.Order{}
	for _, number := range numbers {
		o, err := m.GetOrder(ctx, number)
		if err != nil {
			return nil, err
		}
		switch {
		case criteria.Status != "" && o.Status != criteria.Status:
		case criteria.CustomerID != "" && o.CustomerID != criteria.CustomerID:
		case criteria.StoreCode != "" && o.StoreCode != criteria.StoreCode:
		case !criteria.CreatedAfter.IsZero() && !o.CreatedAt.After(criteria.CreatedAfter):
		default:
			result = append(result, o)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if criteria.Limit > 0 && len(result) > criteria.Limit {
		result = result[:criteria.Limit]
	}
	return result, nil
}

func (m *MemoryStore) GetInventory(_ context.Context, key entities.InventoryKey) (entities.InventoryRecord, error) {
	var (
		rec entities.InventoryRecord
		ok  bool
	)
	m.locked(func(s *memoryState) { rec, ok = s.inventory[key] })
	if !ok {
		return entities.InventoryRecord{}, entities.ErrInventoryNotFound
	}
	return rec, nil
}

func (m *MemoryStore) CreateInventory(_ context.Context, rec entities.InventoryRecord) error {
	var err error
	m.locked(func(s *memoryState) {
		if _, ok := s.inventory[rec.Key()]; ok {
			err = entities.ErrInventoryExists
			return
		}
		s.inventory[rec.Key()] = rec
	})
	return err
}

func (m *MemoryStore) UpdateInventory(_ context.Context, rec entities.InventoryRecord, expectedVersion int64) error {
	var err error
	m.locked(func(s *memoryState) {
		current, ok := s.inventory[rec.Key()]
		if !ok || current.Version != expectedVersion {
			err = entities.ErrConcurrentModification
			return
		}
		s.inventory[rec.Key()] = rec
	})
	return err
}

func (m *MemoryStore) SaveAudit(_ context.Context, audit entities.InventoryAudit) error {
	m.locked(func(s *memoryState) {
		audit.ID = int64(len(s.audits) + 1)
		s.audits = append(s.audits, audit)
	})
	return nil
}

func (m *MemoryStore) AuditTrail(_ context.Context, key entities.InventoryKey, limit int) ([]entities.InventoryAudit, error) {
	result := []entities.InventoryAudit{}
	m.locked(func(s *memoryState) {
		for i := len(s.audits) - 1; i >= 0; i-- {
			a := s.audits[i]
			if a.SkuCode != key.SkuCode || a.Warehouse != key.Warehouse {
				continue
			}
			result = append(result, a)
			if limit > 0 && len(result) == limit {
				return
			}
		}
	})
	return result, nil
}

func (m *MemoryStore) CreateGiftCertificate(_ context.Context, gc entities.GiftCertificate) error {
	m.locked(func(s *memoryState) { s.giftCerts[gc.Code] = gc })
	return nil
}

func (m *MemoryStore) GetGiftCertificate(_ context.Context, code string) (entities.GiftCertificate, error) {
	var (
		gc entities.GiftCertificate
		ok bool
	)
	m.locked(func(s *memoryState) { gc, ok = s.giftCerts[code] })
	if !ok {
		return entities.GiftCertificate{}, entities.ErrGiftCertificateNotFound
	}
	return gc, nil
}

func (m *MemoryStore) DeleteGiftCertificate(_ context.Context, code string) error {
	var ok bool
	m.locked(func(s *memoryState) {
		_, ok = s.giftCerts[code]
		delete(s.giftCerts, code)
		delete(s.ledger, code)
	})
	if !ok {
		return entities.ErrGiftCertificateNotFound
	}
	return nil
}

func (m *MemoryStore) Transactions(_ context.Context, code string) ([]entities.GiftCertificateTransaction, error) {
	var txs []entities.GiftCertificateTransaction
	m.locked(func(s *memoryState) { txs = slices.Clone(s.ledger[code]) })
	return txs, nil
}

func (m *MemoryStore) AppendTransaction(_ context.Context, tx entities.GiftCertificateTransaction) error {
	var err error
	m.locked(func(s *memoryState) {
		if _, ok := s.giftCerts[tx.Code]; !ok {
			err = entities.ErrGiftCertificateNotFound
			return
		}
		s.ledger[tx.Code] = append(s.ledger[tx.Code], tx)
	})
	return err
}

func (m *MemoryStore) SaveCart(_ context.Context, cart *entities.ShoppingCart) error {
	data, err := cart.Marshal()
	if err != nil {
		return err
	}
	m.locked(func(s *memoryState) { s.carts[cart.GUID] = data })
	return nil
}

func (m *MemoryStore) GetCart(_ context.Context, guid string) (*entities.ShoppingCart, error) {
	var (
		data []byte
		ok   bool
	)
	m.locked(func(s *memoryState) { data, ok = s.carts[guid] })
	if !ok {
		return nil, entities.ErrCartNotFound
	}
	var cart entities.ShoppingCart
	if err := cart.Unmarshal(data); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (m *MemoryStore) DeleteCart(_ context.Context, guid string) error {
	m.locked(func(s *memoryState) { delete(s.carts, guid) })
	return nil
}
