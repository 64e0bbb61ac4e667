package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/domain/service"
	"github.com/Dim-Aks/Bot-shop/internal/errors"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// dispatcher routes incoming updates to the use cases and renders replies.
type dispatcher struct {
	bot       *tgbotapi.BotAPI
	users     usecase.UserUsecase
	catalog   usecase.CatalogUsecase
	cart      usecase.CartUsecase
	checkout  usecase.CheckoutUsecase
	messenger service.Messenger
	channel   string
	logger    *slog.Logger
}

// Handle processes one update. Errors are logged, never returned: a failed
// reply must not take down the polling loop.
func (d *dispatcher) Handle(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.PreCheckoutQuery != nil:
		d.handlePreCheckout(update.PreCheckoutQuery)
	case update.CallbackQuery != nil:
		d.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		d.handleMessage(ctx, update.Message)
	}
}

func (d *dispatcher) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.SuccessfulPayment != nil {
		d.handleSuccessfulPayment(ctx, message)

		return
	}

	if message.From != nil {
		if _, err := d.users.RegisterOrRefresh(ctx, usecase.TelegramProfile{
			TelegramID: message.From.ID,
			Username:   message.From.UserName,
			FirstName:  message.From.FirstName,
			LastName:   message.From.LastName,
		}); err != nil {
			d.logger.Error("failed to register user",
				slog.Int64("telegram_id", message.From.ID), slog.Any("error", err))
		}
	}

	if message.IsCommand() {
		d.handleCommand(ctx, message)

		return
	}

	d.handleText(ctx, message)
}

func (d *dispatcher) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		if !d.passesChannelGate(ctx, message.From.ID, chatID) {
			return
		}
		d.send(chatID, "Welcome to the shop! Pick a category:", nil)
		d.showCategories(ctx, chatID, 0, 1)
	case "cart":
		d.showCart(ctx, chatID, message.From.ID, 0)
	default:
		d.send(chatID, "Unknown command. Use /start to open the catalog.", nil)
	}
}

// handleText routes free text through the checkout workflow state.
func (d *dispatcher) handleText(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	telegramID := message.From.ID

	switch d.checkout.State(chatID) {
	case usecase.StateAwaitingQuantity:
		d.handleQuantityInput(ctx, chatID, telegramID, message.Text)
	case usecase.StateAwaitingName:
		d.checkout.SubmitName(chatID, message.Text)
		d.send(chatID, "Enter the delivery address:", nil)
	case usecase.StateAwaitingAddress:
		d.checkout.SubmitAddress(chatID, message.Text)
		d.send(chatID, "Enter your phone number:", nil)
	case usecase.StateAwaitingPhone:
		d.handlePhoneInput(ctx, chatID, telegramID, message.Text)
	default:
		d.send(chatID, "Use /start to open the catalog.", nil)
	}
}

func (d *dispatcher) handleQuantityInput(ctx context.Context, chatID, telegramID int64, text string) {
	quantity, err := d.checkout.SubmitQuantity(ctx, chatID, telegramID, text)
	switch {
	case err == nil:
		d.send(chatID, fmt.Sprintf("Added %d item(s) to your cart ✅", quantity), nil)
		d.showCategories(ctx, chatID, 0, 1)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		d.send(chatID, "Quantity must be a positive whole number. Open the product card to try again.", nil)
	case errors.Is(err, usecase.ErrSessionExpired):
		d.send(chatID, "This product is no longer available.", nil)
	default:
		d.logger.Error("failed to process quantity", slog.Int64("chat_id", chatID), slog.Any("error", err))
		d.send(chatID, "Something went wrong, please try again.", nil)
	}
}

func (d *dispatcher) handlePhoneInput(ctx context.Context, chatID, telegramID int64, text string) {
	summary, err := d.checkout.SubmitPhone(ctx, chatID, telegramID, text)
	switch {
	case err == nil:
		markup := paymentKeyboard()
		d.send(chatID, orderSummaryText(summary), &markup)
	case errors.Is(err, usecase.ErrCartEmpty):
		markup := emptyCartKeyboard()
		d.send(chatID, "Your cart is empty, there is nothing to order.", &markup)
	default:
		d.logger.Error("failed to build order summary", slog.Int64("chat_id", chatID), slog.Any("error", err))
		d.send(chatID, "Something went wrong, please try again.", nil)
	}
}

func (d *dispatcher) handleSuccessfulPayment(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if err := d.checkout.ConfirmPayment(ctx, chatID, message.From.ID); err != nil {
		d.logger.Error("failed to finalize payment",
			slog.Int64("chat_id", chatID), slog.Any("error", err))
	}

	d.send(chatID, "🎉 Payment received, thank you! We will contact you about the delivery.", nil)
}

// handlePreCheckout approves the pre-checkout query; Telegram cancels the
// payment if it is not answered within ten seconds.
func (d *dispatcher) handlePreCheckout(query *tgbotapi.PreCheckoutQuery) {
	if _, err := d.bot.Request(tgbotapi.PreCheckoutConfig{
		PreCheckoutQueryID: query.ID,
		OK:                 true,
	}); err != nil {
		d.logger.Error("failed to answer pre-checkout query", slog.Any("error", err))
	}
}

func (d *dispatcher) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Ack first so the client stops showing the progress spinner.
	if _, err := d.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		d.logger.Warn("failed to answer callback query", slog.Any("error", err))
	}

	data, ok := parseCallback(query.Data)
	if !ok {
		d.logger.Warn("ignoring malformed callback", slog.String("data", query.Data))

		return
	}

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID
	telegramID := query.From.ID

	switch data.action {
	case actionNoop:
	case actionBackToCategories:
		d.showCategories(ctx, chatID, messageID, 1)
	case actionCategoriesPage:
		d.showCategories(ctx, chatID, messageID, data.page)
	case actionOpenCategory:
		d.showSubCategories(ctx, chatID, messageID, data.id, 1)
	case actionSubCategoryPage:
		d.showSubCategories(ctx, chatID, messageID, data.id, data.page)
	case actionOpenSubCategory:
		d.showProducts(ctx, chatID, data.id, 1)
	case actionProductsPage:
		d.showProducts(ctx, chatID, data.id, data.page)
	case actionOpenProduct:
		d.showProductCard(ctx, chatID, data.id)
	case actionAddToCart:
		d.checkout.BeginQuantity(chatID, data.id)
		d.send(chatID, "How many would you like? Enter a number:", nil)
	case actionViewCart:
		d.showCart(ctx, chatID, telegramID, 0)
	case actionRemoveFromCart:
		if !d.cart.RemoveLine(ctx, data.id) {
			d.send(chatID, "Failed to remove the item, please try again.", nil)

			return
		}
		d.showCart(ctx, chatID, telegramID, messageID)
	case actionCheckout:
		d.checkout.BeginCheckout(chatID)
		d.send(chatID, "Enter your name:", nil)
	case actionPay:
		d.handlePay(ctx, chatID, telegramID)
	case actionCancelOrder:
		d.checkout.Cancel(chatID)
		d.send(chatID, "Order cancelled.", nil)
		d.showCategories(ctx, chatID, 0, 1)
	}
}

func (d *dispatcher) handlePay(ctx context.Context, chatID, telegramID int64) {
	err := d.checkout.Pay(ctx, chatID, telegramID)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrPaymentUnavailable):
		d.send(chatID, "Payments are not available right now, please try again later.", nil)
	case errors.Is(err, usecase.ErrSessionExpired):
		d.send(chatID, "The checkout session expired, please start again.", nil)
	default:
		d.logger.Error("failed to issue invoice", slog.Int64("chat_id", chatID), slog.Any("error", err))
		d.send(chatID, "Failed to start the payment, please try again.", nil)
	}
}

// passesChannelGate enforces the subscription requirement. An unset channel
// disables the gate; membership check failures deny entry and are logged.
func (d *dispatcher) passesChannelGate(ctx context.Context, telegramID, chatID int64) bool {
	if d.channel == "" {
		return true
	}

	member, err := d.messenger.IsChannelMember(ctx, d.channel, telegramID)
	if err != nil {
		d.logger.Warn("channel membership check failed",
			slog.Int64("telegram_id", telegramID), slog.Any("error", err))
	}
	if member {
		return true
	}

	d.send(chatID, fmt.Sprintf(
		"Please subscribe to our channel first: https://t.me/%s\nThen send /start again.",
		strings.TrimPrefix(d.channel, "@")), nil)

	return false
}

func (d *dispatcher) showCategories(ctx context.Context, chatID int64, messageID, page int) {
	categories, err := d.catalog.ListCategories(ctx)
	if err != nil {
		d.logger.Error("failed to list categories", slog.Any("error", err))
		d.send(chatID, "Failed to load the catalog, please try again.", nil)

		return
	}

	text := "📂 Categories:"
	if len(categories) == 0 {
		text = "The catalog is empty for now. Check back later!"
	}
	markup := categoriesKeyboard(categories, page)
	d.sendOrEdit(chatID, messageID, text, &markup)
}

func (d *dispatcher) showSubCategories(ctx context.Context, chatID int64, messageID int, categoryID uint, page int) {
	subCategories, err := d.catalog.ListSubCategories(ctx, categoryID)
	if err != nil {
		d.logger.Error("failed to list subcategories",
			slog.Any("category_id", categoryID), slog.Any("error", err))
		d.send(chatID, "Failed to load the catalog, please try again.", nil)

		return
	}

	text := "📂 Subcategories:"
	if len(subCategories) == 0 {
		text = "Nothing here yet."
	}
	markup := subCategoriesKeyboard(subCategories, categoryID, page)
	d.sendOrEdit(chatID, messageID, text, &markup)
}

// showProducts renders one page of product cards followed by a navigation
// message. Cards are separate messages because each carries its own photo.
func (d *dispatcher) showProducts(ctx context.Context, chatID int64, subCategoryID uint, page int) {
	subCategory, err := d.catalog.GetSubCategory(ctx, subCategoryID)
	if err != nil {
		d.logger.Error("failed to load subcategory",
			slog.Any("subcategory_id", subCategoryID), slog.Any("error", err))
		d.send(chatID, "This section is no longer available.", nil)

		return
	}

	products, err := d.catalog.ListProducts(ctx, subCategoryID)
	if err != nil {
		d.logger.Error("failed to list products",
			slog.Any("subcategory_id", subCategoryID), slog.Any("error", err))
		d.send(chatID, "Failed to load the catalog, please try again.", nil)

		return
	}

	page = clampPage(len(products), productsPageSize, page)
	lo, hi := pageSlice(len(products), productsPageSize, page)
	for _, product := range products[lo:hi] {
		d.sendProductCard(chatID, product)
	}

	text := fmt.Sprintf("Page %d of %d", page, pageCount(len(products), productsPageSize))
	if len(products) == 0 {
		text = "Nothing here yet."
	}
	markup := productsNavKeyboard(subCategory, len(products), page)
	d.send(chatID, text, &markup)
}

func (d *dispatcher) showProductCard(ctx context.Context, chatID int64, productID uint) {
	product, err := d.catalog.GetProduct(ctx, productID)
	if err != nil {
		d.send(chatID, "This product is no longer available.", nil)

		return
	}

	d.sendProductCard(chatID, product)
}

func (d *dispatcher) sendProductCard(chatID int64, product *entity.Product) {
	caption := productCardText(product)
	markup := productCardKeyboard(product.ID)

	if product.Photo != "" {
		msg := tgbotapi.NewPhoto(chatID, photoFile(product.Photo))
		msg.Caption = caption
		msg.ReplyMarkup = markup
		if _, err := d.bot.Send(msg); err == nil {
			return
		}
		// Fall back to a text card when the photo reference is broken.
	}

	d.send(chatID, caption, &markup)
}

func (d *dispatcher) showCart(ctx context.Context, chatID, telegramID int64, messageID int) {
	items, err := d.cart.FetchCart(ctx, telegramID)
	if err != nil {
		d.logger.Error("failed to fetch cart", slog.Int64("chat_id", chatID), slog.Any("error", err))
		d.send(chatID, "Failed to load your cart, please try again.", nil)

		return
	}

	if len(items) == 0 {
		markup := emptyCartKeyboard()
		d.sendOrEdit(chatID, messageID, "🛒 Your cart is empty.", &markup)

		return
	}

	markup := cartKeyboard(items)
	d.sendOrEdit(chatID, messageID, cartText(items), &markup)
}

func (d *dispatcher) send(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	if _, err := d.bot.Send(msg); err != nil {
		d.logger.Error("failed to send message", slog.Int64("chat_id", chatID), slog.Any("error", err))
	}
}

// sendOrEdit edits the originating menu message in place when there is one,
// so menu navigation does not pile up messages.
func (d *dispatcher) sendOrEdit(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	if messageID == 0 {
		d.send(chatID, text, markup)

		return
	}

	msg := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *markup)
	if _, err := d.bot.Send(msg); err != nil {
		// Editing fails on photo messages and deleted messages; fall back.
		d.send(chatID, text, markup)
	}
}
