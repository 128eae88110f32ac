package i18n

import "golang.org/x/text/language"

const (
	TitleError   Key = "title.error"
	TitleSuccess Key = "title.success"

	NavAdminPanel Key = "nav.admin_panel"
	NavDashboard  Key = "nav.dashboard"
	NavRooms      Key = "nav.rooms"
	NavServices   Key = "nav.services"
	NavGallery    Key = "nav.gallery"
	NavBookings   Key = "nav.bookings"
	NavPricing    Key = "nav.pricing"
	NavSettings   Key = "nav.settings"
	NavMedia      Key = "nav.media"

	MediaLoadFailed       Key = "media.load_failed"
	MediaUploaded         Key = "media.uploaded"
	MediaDeleted          Key = "media.deleted"
	MediaRenamed          Key = "media.renamed"
	MediaOnlyImageVideo   Key = "media.only_image_video"
	MediaSizeOver50MB     Key = "media.size_over_50mb"
	MediaUnknownError     Key = "media.unknown_error"
	MediaConfirmDelete    Key = "media.confirm_delete"
	MediaMissingFile      Key = "media.missing_file"
	MediaMissingName      Key = "media.missing_name"
	MediaPermissionDenied Key = "media.permission_denied"

	UploaderTooManyTitle     Key = "uploader.too_many.title"
	UploaderTooManyImages    Key = "uploader.too_many.images"
	UploaderTooManyVideos    Key = "uploader.too_many.videos"
	UploaderInvalidTypeTitle Key = "uploader.invalid_type.title"
	UploaderOnlyImages       Key = "uploader.only_images"
	UploaderOnlyVideos       Key = "uploader.only_videos"
	UploaderTooLargeTitle    Key = "uploader.too_large.title"
	UploaderTooLarge         Key = "uploader.too_large"
	UploaderSuccessTitle     Key = "uploader.success.title"
	UploaderImagesUploaded   Key = "uploader.images_uploaded"
	UploaderVideosUploaded   Key = "uploader.videos_uploaded"
	UploaderNothingUploaded  Key = "uploader.nothing_uploaded"
	UploaderEmptyURLTitle    Key = "uploader.empty_url.title"
	UploaderInvalidURLTitle  Key = "uploader.invalid_url.title"
	UploaderEnterValidURL    Key = "uploader.enter_valid_url"
	UploaderDeletedTitle     Key = "uploader.deleted.title"
	UploaderDeleted          Key = "uploader.deleted"
	UploaderURLAdded         Key = "uploader.url_added"
	UploaderUnknownKind      Key = "uploader.unknown_kind"
	UploaderUnknownType      Key = "uploader.unknown_type"

	AuthMissing   Key = "auth.missing"
	AuthInvalid   Key = "auth.invalid"
	AuthForbidden Key = "auth.forbidden"
	AuthLoggedOut Key = "auth.logged_out"

	RoomsLoadFailed      Key = "rooms.load_failed"
	BookingInvalidDates  Key = "booking.invalid_dates"
	BookingCheckinPast   Key = "booking.checkin_past"
	BookingCheckoutOrder Key = "booking.checkout_order"
	BookingGuests        Key = "booking.guests"
	BookingRecorded      Key = "booking.recorded"
)

var English = map[Key]string{
	TitleError:   "Error",
	TitleSuccess: "Success",

	NavAdminPanel: "Admin Panel",
	NavDashboard:  "Dashboard",
	NavRooms:      "Rooms",
	NavServices:   "Services",
	NavGallery:    "Gallery",
	NavBookings:   "Bookings",
	NavPricing:    "Pricing",
	NavSettings:   "Settings",
	NavMedia:      "Media",

	MediaLoadFailed:       "Failed to load media files",
	MediaUploaded:         "File uploaded successfully",
	MediaDeleted:          "File deleted successfully",
	MediaRenamed:          "File renamed successfully",
	MediaOnlyImageVideo:   "Only image and video files are allowed",
	MediaSizeOver50MB:     "File size exceeds the limit of 50MB",
	MediaUnknownError:     "An unknown error occurred",
	MediaConfirmDelete:    "Are you sure you want to delete this file?",
	MediaMissingFile:      "Select a file to upload",
	MediaMissingName:      "A new file name is required",
	MediaPermissionDenied: "Permission error while %s. Check the storage service permissions: %s",

	UploaderTooManyTitle:     "Too many files",
	UploaderTooManyImages:    "You can only upload a maximum of %d images",
	UploaderTooManyVideos:    "You can only upload a maximum of %d videos",
	UploaderInvalidTypeTitle: "Invalid file type",
	UploaderOnlyImages:       "Please upload only images",
	UploaderOnlyVideos:       "Please upload only videos",
	UploaderTooLargeTitle:    "File too large",
	UploaderTooLarge:         "Files must be less than %s",
	UploaderSuccessTitle:     "Upload successful",
	UploaderImagesUploaded:   "%d image(s) uploaded successfully",
	UploaderVideosUploaded:   "%d video(s) uploaded successfully",
	UploaderNothingUploaded:  "No file could be uploaded",
	UploaderEmptyURLTitle:    "Empty URL",
	UploaderInvalidURLTitle:  "Invalid URL",
	UploaderEnterValidURL:    "Please enter a valid URL",
	UploaderDeletedTitle:     "File deleted",
	UploaderDeleted:          "The file has been deleted",
	UploaderURLAdded:         "URL added",
	UploaderUnknownKind:      "Unknown collection kind",
	UploaderUnknownType:      "Media type must be image or video",

	AuthMissing:   "Missing credentials",
	AuthInvalid:   "Invalid credentials",
	AuthForbidden: "Administrator access required",
	AuthLoggedOut: "You have been logged out",

	RoomsLoadFailed:      "Failed to load rooms",
	BookingInvalidDates:  "Dates must use the YYYY-MM-DD format",
	BookingCheckinPast:   "Check-in date cannot be in the past",
	BookingCheckoutOrder: "Check-out date cannot be before check-in date",
	BookingGuests:        "Number of guests must be between %d and %d",
	BookingRecorded:      "Availability request received",
}

var Portuguese = map[Key]string{
	TitleError:   "Erro",
	TitleSuccess: "Sucesso",

	NavAdminPanel: "Painel Admin",
	NavDashboard:  "Painel",
	NavRooms:      "Quartos",
	NavServices:   "Serviços",
	NavGallery:    "Galeria",
	NavBookings:   "Reservas",
	NavPricing:    "Preços",
	NavSettings:   "Configurações",
	NavMedia:      "Mídia",

	MediaLoadFailed:       "Falha ao carregar arquivos de mídia",
	MediaUploaded:         "Arquivo enviado com sucesso",
	MediaDeleted:          "Arquivo excluído com sucesso",
	MediaRenamed:          "Arquivo renomeado com sucesso",
	MediaOnlyImageVideo:   "Apenas arquivos de imagem e vídeo são permitidos",
	MediaSizeOver50MB:     "O tamanho do arquivo excede o limite de 50MB",
	MediaUnknownError:     "Ocorreu um erro desconhecido",
	MediaConfirmDelete:    "Tem certeza que deseja excluir este arquivo?",
	MediaMissingFile:      "Selecione um arquivo para enviar",
	MediaMissingName:      "Um novo nome de arquivo é obrigatório",
	MediaPermissionDenied: "Erro de permissão ao %s. Verifique as permissões do serviço de armazenamento: %s",

	UploaderTooManyTitle:     "Muitos arquivos",
	UploaderTooManyImages:    "Você só pode enviar no máximo %d imagens",
	UploaderTooManyVideos:    "Você só pode enviar no máximo %d vídeos",
	UploaderInvalidTypeTitle: "Tipo de arquivo inválido",
	UploaderOnlyImages:       "Por favor, envie apenas imagens",
	UploaderOnlyVideos:       "Por favor, envie apenas vídeos",
	UploaderTooLargeTitle:    "Arquivo muito grande",
	UploaderTooLarge:         "Os arquivos devem ter menos de %s",
	UploaderSuccessTitle:     "Upload bem-sucedido",
	UploaderImagesUploaded:   "%d imagem(ns) enviada(s) com sucesso",
	UploaderVideosUploaded:   "%d vídeo(s) enviado(s) com sucesso",
	UploaderNothingUploaded:  "Nenhum arquivo pôde ser enviado",
	UploaderEmptyURLTitle:    "URL vazia",
	UploaderInvalidURLTitle:  "URL inválida",
	UploaderEnterValidURL:    "Por favor, insira uma URL válida",
	UploaderDeletedTitle:     "Arquivo excluído",
	UploaderDeleted:          "O arquivo foi excluído",
	UploaderURLAdded:         "URL adicionada",
	UploaderUnknownKind:      "Tipo de coleção desconhecido",
	UploaderUnknownType:      "O tipo de mídia deve ser imagem ou vídeo",

	AuthMissing:   "Credenciais ausentes",
	AuthInvalid:   "Credenciais inválidas",
	AuthForbidden: "Acesso de administrador necessário",
	AuthLoggedOut: "Você saiu da sessão",

	RoomsLoadFailed:      "Falha ao carregar quartos",
	BookingInvalidDates:  "As datas devem usar o formato AAAA-MM-DD",
	BookingCheckinPast:   "A data de check-in não pode estar no passado",
	BookingCheckoutOrder: "A data de check-out não pode ser anterior ao check-in",
	BookingGuests:        "O número de hóspedes deve estar entre %d e %d",
	BookingRecorded:      "Pedido de disponibilidade recebido",
}

// Default returns the English/Brazilian Portuguese bundle used by the server.
func Default() *Bundle {
	b := NewBundle(language.English, English)
	b.Add(language.BrazilianPortuguese, Portuguese)

	return b
}
