package repositories

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/guonaihong/gout"

	"laptop-shop/libs"
	"laptop-shop/models"
	"laptop-shop/utils"
)

// ShopClient is the only gateway to the laptop-shop backend. It owns the
// configured base URL; no other package builds absolute backend URLs.
type ShopClient struct {
	BaseURL string
	Timeout time.Duration
}

func NewShopClient(baseURL string) *ShopClient {
	return &ShopClient{
		BaseURL: baseURL,
		Timeout: 15 * time.Second,
	}
}

func (c *ShopClient) url(path string) string {
	return c.BaseURL + path
}

// decode finishes a request: transport errors pass through, non-2xx becomes
// an APIError with whatever structured messages the body held, and a 2xx
// body is unmarshalled into out when out is non-nil.
func decode(err error, code int, body []byte, out interface{}) error {
	if err != nil {
		return err
	}
	if code < 200 || code > 299 {
		return decodeError(code, body)
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// AllBrands fetches the full brand collection; the list is small enough to
// render unpaginated.
func (c *ShopClient) AllBrands() ([]models.Brand, error) {
	var code int
	var body []byte
	err := gout.GET(c.url("/api/brands/all")).
		SetTimeout(c.Timeout).
		Code(&code).
		BindBody(&body).
		Do()

	var brands []models.Brand
	if err := decode(err, code, body, &brands); err != nil {
		libs.Log().Warnw("brand list fetch failed", "err", err)
		return nil, err
	}
	return brands, nil
}

func (c *ShopClient) BrandProducts(brandID int) ([]models.Product, error) {
	var code int
	var body []byte
	err := gout.GET(c.url(fmt.Sprintf("/api/brands/%d", brandID))).
		SetTimeout(c.Timeout).
		Code(&code).
		BindBody(&body).
		Do()

	var products []models.Product
	if err := decode(err, code, body, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Products fetches one page of the product collection. modelName, when
// non-empty, is forwarded verbatim as the backend's substring filter.
func (c *ShopClient) Products(page, size int, modelName string) (*models.ProductPage, error) {
	query := gout.H{"page": page, "size": size}
	if modelName != "" {
		query["modelName"] = modelName
	}

	var code int
	var body []byte
	err := gout.GET(c.url("/api/products/all")).
		SetTimeout(c.Timeout).
		SetQuery(query).
		Code(&code).
		BindBody(&body).
		Do()

	var pageResp models.ProductPage
	if err := decode(err, code, body, &pageResp); err != nil {
		return nil, err
	}
	return &pageResp, nil
}

func (c *ShopClient) Product(id int) (*models.Product, error) {
	var code int
	var body []byte
	err := gout.GET(c.url(fmt.Sprintf("/api/products/%d", id))).
		SetTimeout(c.Timeout).
		Code(&code).
		BindBody(&body).
		Do()

	var product models.Product
	if err := decode(err, code, body, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *ShopClient) ProductsByPriceRange(minPrice, maxPrice float64) ([]models.Product, error) {
	var code int
	var body []byte
	// plain decimal formatting; %v on a float would turn 5000000 into 5e+06
	err := gout.GET(c.url("/api/products/price-range")).
		SetTimeout(c.Timeout).
		SetQuery(gout.H{
			"minPrice": strconv.FormatFloat(minPrice, 'f', -1, 64),
			"maxPrice": strconv.FormatFloat(maxPrice, 'f', -1, 64),
		}).
		Code(&code).
		BindBody(&body).
		Do()

	var products []models.Product
	if err := decode(err, code, body, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *ShopClient) Authenticate(req models.LoginRequest) (*models.AuthResponse, error) {
	var code int
	var body []byte
	err := gout.POST(c.url("/api/v1/auth/authenticate")).
		SetTimeout(c.Timeout).
		SetJSON(req).
		Code(&code).
		BindBody(&body).
		Do()

	var auth models.AuthResponse
	if err := decode(err, code, body, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (c *ShopClient) Register(req models.RegisterRequest) error {
	var code int
	var body []byte
	err := gout.POST(c.url("/api/v1/auth/register")).
		SetTimeout(c.Timeout).
		SetJSON(req).
		Code(&code).
		BindBody(&body).
		Do()

	return decode(err, code, body, nil)
}

func (c *ShopClient) CurrentUser(token string) (*models.User, error) {
	var code int
	var body []byte
	err := gout.GET(c.url("/api/user/current")).
		SetTimeout(c.Timeout).
		SetHeader(gout.H{"Authorization": "Bearer " + token}).
		Code(&code).
		BindBody(&body).
		Do()

	var user models.User
	if err := decode(err, code, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser always sends the entire record; the backend has no
// partial-field update semantics.
func (c *ShopClient) UpdateUser(token string, user models.User) (*models.User, error) {
	var code int
	var body []byte
	err := gout.POST(c.url(fmt.Sprintf("/api/user/%d/update", user.UserID))).
		SetTimeout(c.Timeout).
		SetHeader(gout.H{"Authorization": "Bearer " + token}).
		SetJSON(user).
		Code(&code).
		BindBody(&body).
		Do()

	var updated models.User
	if err := decode(err, code, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddProduct creates a record via the admin multipart endpoint. The record
// is trimmed before it leaves the process.
func (c *ShopClient) AddProduct(token string, product models.Product, image *multipart.FileHeader) error {
	payload, contentType, err := utils.BuildProductForm(product.Trimmed(), image)
	if err != nil {
		return err
	}

	var code int
	var body []byte
	err = gout.POST(c.url("/admin/api/products/add")).
		SetTimeout(c.Timeout).
		SetHeader(gout.H{"Authorization": "Bearer " + token, "Content-Type": contentType}).
		SetBody(payload).
		Code(&code).
		BindBody(&body).
		Do()

	return decode(err, code, body, nil)
}

func (c *ShopClient) UpdateProduct(token string, id int, product models.Product, image *multipart.FileHeader) error {
	payload, contentType, err := utils.BuildProductForm(product.Trimmed(), image)
	if err != nil {
		return err
	}

	var code int
	var body []byte
	err = gout.PUT(c.url(fmt.Sprintf("/admin/api/products/%d/update", id))).
		SetTimeout(c.Timeout).
		SetHeader(gout.H{"Authorization": "Bearer " + token, "Content-Type": contentType}).
		SetBody(payload).
		Code(&code).
		BindBody(&body).
		Do()

	return decode(err, code, body, nil)
}

func (c *ShopClient) DeleteProduct(token string, id int) error {
	var code int
	var body []byte
	err := gout.DELETE(c.url(fmt.Sprintf("/admin/api/products/%d/delete", id))).
		SetTimeout(c.Timeout).
		SetHeader(gout.H{"Authorization": "Bearer " + token, "Content-Type": "application/json"}).
		Code(&code).
		BindBody(&body).
		Do()

	return decode(err, code, body, nil)
}

// OAuthURL is where the browser is sent for third-party login; the backend
// owns the whole OAuth dance.
func (c *ShopClient) OAuthURL(provider string) string {
	return c.url("/oauth2/authorization/" + provider)
}
