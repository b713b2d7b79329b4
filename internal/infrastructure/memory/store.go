package memory

import "github.com/exporthub/exporthub-api/internal/domain/entity"

// Store implementa todos los puertos de repositorio sobre un Dataset.
// Las búsquedas por id son recorridos lineales que devuelven la primera
// coincidencia (los ids se asumen únicos; si no lo fueran, gana el primero).
// Los métodos devuelven copias: el snapshot nunca queda expuesto a mutación.
type Store struct {
	ds Dataset
}

// NewStore construye el store sobre el snapshot dado.
func NewStore(ds Dataset) *Store {
	return &Store{ds: ds}
}

// NewSeeded construye el store con los fixtures de demostración.
func NewSeeded() *Store {
	return NewStore(DefaultDataset())
}

// ── Products ─────────────────────────────────────────────────────────────────

// ProductRepo vista tipada del store para productos.
type ProductRepo struct{ s *Store }

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	for i := range r.s.ds.Products {
		if r.s.ds.Products[i].ID == id {
			p := r.s.ds.Products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for i := range r.s.ds.Products {
		if r.s.ds.Products[i].SKU == sku {
			p := r.s.ds.Products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.ds.Products))
	for i := range r.s.ds.Products {
		p := r.s.ds.Products[i]
		out = append(out, &p)
	}
	return out, nil
}

// ── Invoices / Payments ──────────────────────────────────────────────────────

// InvoiceRepo vista tipada del store para facturas.
type InvoiceRepo struct{ s *Store }

// Invoices devuelve el repositorio de facturas.
func (s *Store) Invoices() *InvoiceRepo { return &InvoiceRepo{s: s} }

func (r *InvoiceRepo) GetByID(id int) (*entity.Invoice, error) {
	for i := range r.s.ds.Invoices {
		if r.s.ds.Invoices[i].ID == id {
			inv := r.s.ds.Invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.s.ds.Invoices))
	for i := range r.s.ds.Invoices {
		inv := r.s.ds.Invoices[i]
		out = append(out, &inv)
	}
	return out, nil
}

// PaymentRepo vista tipada del store para pagos.
type PaymentRepo struct{ s *Store }

// Payments devuelve el repositorio de pagos.
func (s *Store) Payments() *PaymentRepo { return &PaymentRepo{s: s} }

func (r *PaymentRepo) GetByID(id int) (*entity.Payment, error) {
	for i := range r.s.ds.Payments {
		if r.s.ds.Payments[i].ID == id {
			p := r.s.ds.Payments[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	out := make([]*entity.Payment, 0, len(r.s.ds.Payments))
	for i := range r.s.ds.Payments {
		p := r.s.ds.Payments[i]
		out = append(out, &p)
	}
	return out, nil
}

func (r *PaymentRepo) ListByInvoice(invoiceID int) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for i := range r.s.ds.Payments {
		if r.s.ds.Payments[i].InvoiceID == invoiceID {
			p := r.s.ds.Payments[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

// ── Users ────────────────────────────────────────────────────────────────────

// UserRepo vista tipada del store para usuarios.
type UserRepo struct{ s *Store }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) GetByID(id int) (*entity.User, error) {
	for i := range r.s.ds.Users {
		if r.s.ds.Users[i].ID == id {
			u := r.s.ds.Users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	for i := range r.s.ds.Users {
		if r.s.ds.Users[i].Email == email {
			u := r.s.ds.Users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.s.ds.Users))
	for i := range r.s.ds.Users {
		u := r.s.ds.Users[i]
		out = append(out, &u)
	}
	return out, nil
}

// ── Shipments ────────────────────────────────────────────────────────────────

// ShipmentRepo vista tipada del store para envíos.
type ShipmentRepo struct{ s *Store }

// Shipments devuelve el repositorio de envíos.
func (s *Store) Shipments() *ShipmentRepo { return &ShipmentRepo{s: s} }

func (r *ShipmentRepo) GetByID(id int) (*entity.Shipment, error) {
	for i := range r.s.ds.Shipments {
		if r.s.ds.Shipments[i].ID == id {
			sh := r.s.ds.Shipments[i]
			return &sh, nil
		}
	}
	return nil, nil
}

func (r *ShipmentRepo) List() ([]*entity.Shipment, error) {
	out := make([]*entity.Shipment, 0, len(r.s.ds.Shipments))
	for i := range r.s.ds.Shipments {
		sh := r.s.ds.Shipments[i]
		out = append(out, &sh)
	}
	return out, nil
}

// ── Stock ────────────────────────────────────────────────────────────────────

// StockRepo vista tipada del store para existencias y mutaciones.
type StockRepo struct{ s *Store }

// Stock devuelve el repositorio de stock.
func (s *Store) Stock() *StockRepo { return &StockRepo{s: s} }

func (r *StockRepo) GetItemByID(id int) (*entity.StockItem, error) {
	for i := range r.s.ds.StockItems {
		if r.s.ds.StockItems[i].ID == id {
			it := r.s.ds.StockItems[i]
			return &it, nil
		}
	}
	return nil, nil
}

func (r *StockRepo) ListItems() ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(r.s.ds.StockItems))
	for i := range r.s.ds.StockItems {
		it := r.s.ds.StockItems[i]
		out = append(out, &it)
	}
	return out, nil
}

func (r *StockRepo) ListItemsByWarehouse(warehouseID int) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for i := range r.s.ds.StockItems {
		if r.s.ds.StockItems[i].WarehouseID == warehouseID {
			it := r.s.ds.StockItems[i]
			out = append(out, &it)
		}
	}
	return out, nil
}

func (r *StockRepo) ListMutations() ([]*entity.StockMutation, error) {
	out := make([]*entity.StockMutation, 0, len(r.s.ds.StockMutations))
	for i := range r.s.ds.StockMutations {
		m := r.s.ds.StockMutations[i]
		out = append(out, &m)
	}
	return out, nil
}

// WarehouseRepo vista tipada del store para bodegas.
type WarehouseRepo struct{ s *Store }

// Warehouses devuelve el repositorio de bodegas.
func (s *Store) Warehouses() *WarehouseRepo { return &WarehouseRepo{s: s} }

func (r *WarehouseRepo) GetByID(id int) (*entity.Warehouse, error) {
	for i := range r.s.ds.Warehouses {
		if r.s.ds.Warehouses[i].ID == id {
			w := r.s.ds.Warehouses[i]
			return &w, nil
		}
	}
	return nil, nil
}

func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(r.s.ds.Warehouses))
	for i := range r.s.ds.Warehouses {
		w := r.s.ds.Warehouses[i]
		out = append(out, &w)
	}
	return out, nil
}

// ── Dashboard widgets ────────────────────────────────────────────────────────

// DashboardRepo vista tipada del store para los widgets del tablero.
type DashboardRepo struct{ s *Store }

// Dashboard devuelve el repositorio de widgets del tablero.
func (s *Store) Dashboard() *DashboardRepo { return &DashboardRepo{s: s} }

func (r *DashboardRepo) KPIs() ([]entity.KPI, error) {
	out := make([]entity.KPI, len(r.s.ds.KPIs))
	copy(out, r.s.ds.KPIs)
	return out, nil
}

func (r *DashboardRepo) SalesSeries() (*entity.SalesSeries, error) {
	sales := entity.SalesSeries{
		Labels:  append([]string(nil), r.s.ds.Sales.Labels...),
		Revenue: append([]float64(nil), r.s.ds.Sales.Revenue...),
		Orders:  append([]int(nil), r.s.ds.Sales.Orders...),
	}
	return &sales, nil
}

func (r *DashboardRepo) TopProducts() ([]entity.TopProduct, error) {
	out := make([]entity.TopProduct, len(r.s.ds.TopProducts))
	copy(out, r.s.ds.TopProducts)
	return out, nil
}

func (r *DashboardRepo) RecentActivities() ([]entity.Activity, error) {
	out := make([]entity.Activity, len(r.s.ds.Activities))
	copy(out, r.s.ds.Activities)
	return out, nil
}
