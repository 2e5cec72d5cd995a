package productcontroller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/azozal-iraqi/Skystore/models"
	"github.com/azozal-iraqi/Skystore/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	r := gin.New()
	r.GET("/api/products", GetProducts(s))
	r.POST("/api/admin/products", CreateProduct(s, t.TempDir()))
	r.DELETE("/api/admin/products/:id", DeleteProduct(s))
	return r, s
}

// tiny but valid PNG header bytes; the handler only checks name and type
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func multipartProduct(t *testing.T, fields map[string]string, filename, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filename != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(pngBytes); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestCreateProduct_WithImageDefaultsStockAndDiscount(t *testing.T) {
	r, _ := newTestRouter(t)

	body, contentType := multipartProduct(t,
		map[string]string{"name": "Shirt", "price": "100"}, "shirt.png", "image/png")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool           `json:"success"`
		Product models.Product `json:"product"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success")
	}
	if resp.Product.Name != "Shirt" || resp.Product.Price != 100 {
		t.Fatalf("unexpected product: %+v", resp.Product)
	}
	if resp.Product.Stock != 0 || resp.Product.Discount != 0 {
		t.Fatalf("expected zero stock and discount, got %+v", resp.Product)
	}
	if !strings.HasPrefix(resp.Product.Image, "/uploads/") {
		t.Fatalf("expected image under uploads prefix, got %q", resp.Product.Image)
	}
}

func TestCreateProduct_MissingImageRejected(t *testing.T) {
	r, s := newTestRouter(t)

	body, contentType := multipartProduct(t,
		map[string]string{"name": "Shirt", "price": "100"}, "", "")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	products, err := s.Products()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no product created, got %d", len(products))
	}
}

func TestCreateProduct_NonImageFileRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	body, contentType := multipartProduct(t,
		map[string]string{"name": "Shirt", "price": "100"}, "script.exe", "application/octet-stream")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateProduct_MissingNameOrPriceRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	body, contentType := multipartProduct(t,
		map[string]string{"name": "Shirt"}, "shirt.png", "image/png")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDeleteProduct_UnknownIDStillSucceeds(t *testing.T) {
	r, s := newTestRouter(t)

	p := models.Product{Name: "Shirt", Price: 100}
	if err := s.CreateProduct(&p); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/products/999999", nil)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	products, err := s.Products()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected catalog unchanged, got %d products", len(products))
	}
}
