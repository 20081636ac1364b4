// Copyright 2024 OFD Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fiscal

// Document kind tags (1-99): the outer key of a decoded document tree
// and the top-level tag of its STLV envelope.
const (
	TagFiscalReport           uint16 = 1
	TagOpenShift              uint16 = 2
	TagReceipt                uint16 = 3
	TagBSO                    uint16 = 4
	TagCloseShift             uint16 = 5
	TagCloseArchive           uint16 = 6
	TagOperatorAck            uint16 = 7
	TagFiscalReportCorrection uint16 = 11
	TagCurrentStateReport     uint16 = 21
	TagReceiptCorrection      uint16 = 31
	TagBSOCorrection          uint16 = 41
)

// paymentDocumentCodes are the document kinds that get a
// "<kind>Code" facade field instead of a generic "code" field.
var paymentDocumentCodes = map[uint16]string{
	TagReceipt:           "receiptCode",
	TagReceiptCorrection: "receiptCorrectionCode",
	TagBSO:               "bsoCode",
	TagBSOCorrection:     "bsoCorrectionCode",
}

// DocumentNames maps a top-level tag to its document-kind name, the
// outer key of the decoded document envelope.
var DocumentNames = map[uint16]string{
	TagFiscalReport:           "fiscalReport",
	TagOpenShift:              "openShift",
	TagReceipt:                "receipt",
	TagBSO:                    "bso",
	TagCloseShift:             "closeShift",
	TagCloseArchive:           "closeArchive",
	TagOperatorAck:            "operatorAck",
	TagFiscalReportCorrection: "fiscalReportCorrection",
	TagCurrentStateReport:     "currentStateReport",
	TagReceiptCorrection:      "receiptCorrection",
	TagBSOCorrection:          "bsoCorrection",
}

// receiptFamily builds the parent set of an entry; receiptLike /
// reportLike group the top-level tags that share the receipt-shaped
// vs. report/shift-shaped variant of an ambiguous field name.
func receiptFamily(tags ...uint16) parentSet { return parents(tags...) }

var (
	receiptLike = []uint16{TagReceipt, TagReceiptCorrection, TagBSO, TagBSOCorrection}
	reportLike  = []uint16{TagFiscalReport, TagFiscalReportCorrection, TagOpenShift, TagCloseShift, TagCloseArchive, TagCurrentStateReport}
)

// registryEntries is the full leaf-tag catalog. Tag numbers for fields
// exercised by concrete wire scenarios (1, 3, 5, 7, 1015, 1022, 1047,
// 1055, 1062, 1068) are reproduced exactly; the remainder is a
// representative catalog assigned consistently.
var registryEntries = []Entry{
	// --- document kinds ---
	{Tag: TagFiscalReport, Kind: KindSTLV, Name: "fiscalReport", Description: "отчет о фискализации", MaxLen: 4096},
	{Tag: TagOpenShift, Kind: KindSTLV, Name: "openShift", Description: "отчет об открытии смены", MaxLen: 4096},
	{Tag: TagReceipt, Kind: KindSTLV, Name: "receipt", Description: "кассовый чек", MaxLen: 32768},
	{Tag: TagBSO, Kind: KindSTLV, Name: "bso", Description: "бланк строгой отчетности", MaxLen: 32768},
	{Tag: TagCloseShift, Kind: KindSTLV, Name: "closeShift", Description: "отчет о закрытии смены", MaxLen: 4096},
	{Tag: TagCloseArchive, Kind: KindSTLV, Name: "closeArchive", Description: "отчет о закрытии фискального накопителя", MaxLen: 4096},
	{Tag: TagOperatorAck, Kind: KindSTLV, Name: "operatorAck", Description: "подтверждение оператора", MaxLen: 4096},
	{Tag: TagFiscalReportCorrection, Kind: KindSTLV, Name: "fiscalReportCorrection", Description: "отчет об изменении параметров регистрации", MaxLen: 4096},
	{Tag: TagCurrentStateReport, Kind: KindSTLV, Name: "currentStateReport", Description: "отчет о текущем состоянии расчетов", MaxLen: 4096},
	{Tag: TagReceiptCorrection, Kind: KindSTLV, Name: "receiptCorrection", Description: "кассовый чек коррекции", MaxLen: 32768},
	{Tag: TagBSOCorrection, Kind: KindSTLV, Name: "bsoCorrection", Description: "бланк строгой отчетности коррекции", MaxLen: 32768},

	// --- common envelope fields ---
	{Tag: 1012, Kind: KindUnixTime, Name: "dateTime", Description: "дата, время", MaxLen: 4, Cardinality: CardinalityOne},
	{Tag: 1013, Kind: KindString, Name: "kktNumber", Description: "заводской номер ККТ", MaxLen: 20, Cardinality: CardinalityOne},
	{Tag: 1017, Kind: KindString, Name: "ofdInn", Description: "ИНН ОФД", MaxLen: 12, Cardinality: CardinalityOne},
	{Tag: 1018, Kind: KindString, Name: "userInn", Description: "ИНН пользователя", MaxLen: 12, Cardinality: CardinalityOne},
	{Tag: 1021, Kind: KindString, Name: "operator", Description: "кассир", MaxLen: 64, Cardinality: CardinalityOpt},
	{Tag: 1037, Kind: KindString, Name: "kktRegId", Description: "регистрационный номер ККТ", MaxLen: 20, Cardinality: CardinalityOne},
	{Tag: 1038, Kind: KindVLN, Name: "shiftNumber", Description: "номер смены", MaxLen: 2, Cardinality: CardinalityOne},
	{Tag: 1040, Kind: KindVLN, Name: "fiscalDocumentNumber", Description: "номер фискального документа", MaxLen: 4, Cardinality: CardinalityOne},
	{Tag: 1041, Kind: KindString, Name: "fiscalDriveNumber", Description: "номер фискального накопителя", MaxLen: 16, Cardinality: CardinalityOne},
	{Tag: 1042, Kind: KindVLN, Name: "requestNumber", Description: "номер чека за смену", MaxLen: 4, Cardinality: CardinalityOne},
	{Tag: 1048, Kind: KindString, Name: "user", Description: "наименование пользователя", MaxLen: 256, Cardinality: CardinalityOpt},
	{Tag: 1054, Kind: KindByte, Name: "operationType", Description: "признак расчета", MaxLen: 1, Cardinality: CardinalityOne},
	{Tag: 1077, Kind: KindVLN, Name: "fiscalSign", Description: "фискальный признак документа", MaxLen: 6, Cardinality: CardinalityOne},
	{Tag: 1209, Kind: KindByte, Name: "autoMode", Description: "автоматический режим", MaxLen: 1, Cardinality: CardinalityOpt},
	{Tag: 1221, Kind: KindByte, Name: "offlineMode", Description: "автономный режим", MaxLen: 1, Cardinality: CardinalityOpt},

	// --- ambiguous names resolved by parent context ---
	{Tag: 1055, Kind: KindByte, Name: "taxationType", Description: "применяемая система налогообложения (чек)", MaxLen: 1, Cardinality: CardinalityOne, Parents: receiptFamily(receiptLike...)},
	{Tag: 1062, Kind: KindByte, Name: "taxationType", Description: "применяемая система налогообложения (смена)", MaxLen: 1, Cardinality: CardinalityOne, Parents: receiptFamily(reportLike...)},

	{Tag: 1073, Kind: KindString, Name: "operatorInn", Description: "ИНН оператора по переводу денежных средств (чек)", MaxLen: 12, Cardinality: CardinalityOpt, Parents: receiptFamily(receiptLike...)},
	{Tag: 1074, Kind: KindString, Name: "operatorInn", Description: "ИНН оператора по переводу денежных средств (смена)", MaxLen: 12, Cardinality: CardinalityOpt, Parents: receiptFamily(reportLike...)},

	{Tag: 1020, Kind: KindFVLN, Name: "totalSum", Description: "итоговая сумма расчета (чек)", MaxLen: 8, Cardinality: CardinalityOne, Parents: receiptFamily(receiptLike...)},
	{Tag: 1128, Kind: KindFVLN, Name: "totalSum", Description: "итоговая сумма расчетов (отчет)", MaxLen: 8, Cardinality: CardinalityOne, Parents: receiptFamily(reportLike...)},

	{Tag: 1215, Kind: KindFVLN, Name: "prepaidSum", Description: "сумма по чеку (БСО) предоплатой (аванс) (чек)", MaxLen: 8, Cardinality: CardinalityOpt, Parents: receiptFamily(receiptLike...)},
	{Tag: 1216, Kind: KindFVLN, Name: "prepaidSum", Description: "сумма по чекам предоплатой (аванс) (отчет)", MaxLen: 8, Cardinality: CardinalityOpt, Parents: receiptFamily(TagCurrentStateReport)},

	{Tag: 1217, Kind: KindFVLN, Name: "creditSum", Description: "сумма по чеку (БСО) постоплатой (в кредит) (чек)", MaxLen: 8, Cardinality: CardinalityOpt, Parents: receiptFamily(receiptLike...)},
	{Tag: 1218, Kind: KindFVLN, Name: "creditSum", Description: "сумма по чекам постоплатой (в кредит) (отчет)", MaxLen: 8, Cardinality: CardinalityOpt, Parents: receiptFamily(TagCurrentStateReport)},

	{Tag: 1219, Kind: KindFVLN, Name: "provisionSum", Description: "сумма по чеку (БСО) встречным предоставлением (чек)", MaxLen: 8, Cardinality: CardinalityOpt, Parents: receiptFamily(receiptLike...)},
	{Tag: 1220, Kind: KindFVLN, Name: "provisionSum", Description: "сумма по чекам встречным предоставлением (отчет)", MaxLen: 8, Cardinality: CardinalityOpt, Parents: receiptFamily(TagCurrentStateReport)},

	{Tag: 1031, Kind: KindFVLN, Name: "cashTotalSum", Description: "наличными", MaxLen: 8, Cardinality: CardinalityOne, Parents: receiptFamily(receiptLike...)},
	{Tag: 1081, Kind: KindFVLN, Name: "ecashTotalSum", Description: "электронными", MaxLen: 8, Cardinality: CardinalityOne, Parents: receiptFamily(receiptLike...)},

	// --- receipt line items ---
	{Tag: 1059, Kind: KindSTLV, Name: "items", Description: "предмет расчета", MaxLen: 1024, Cardinality: CardinalityManyOne, Parents: receiptFamily(receiptLike...)},
	{Tag: 1060, Kind: KindSTLV, Name: "stornoItems", Description: "сторно предметов расчета", MaxLen: 1024, Cardinality: CardinalityManyZero, Parents: receiptFamily(TagReceiptCorrection, TagBSOCorrection)},
	{Tag: 1023, Kind: KindFVLN, Name: "quantity", Description: "количество предмета расчета", MaxLen: 8, Cardinality: CardinalityOne, Parents: receiptFamily(1059)},
	{Tag: 1030, Kind: KindString, Name: "itemName", Description: "наименование предмета расчета", MaxLen: 128, Cardinality: CardinalityOne, Parents: receiptFamily(1059)},
	{Tag: 1043, Kind: KindFVLN, Name: "price", Description: "цена за единицу предмета расчета", MaxLen: 8, Cardinality: CardinalityOne, Parents: receiptFamily(1059)},
	{Tag: 1044, Kind: KindFVLN, Name: "itemTotalSum", Description: "стоимость предмета расчета", MaxLen: 8, Cardinality: CardinalityOne, Parents: receiptFamily(1059)},
	{Tag: 1199, Kind: KindByte, Name: "itemTaxType", Description: "ставка НДС", MaxLen: 1, Cardinality: CardinalityOpt, Parents: receiptFamily(1059)},
	{Tag: 1212, Kind: KindByte, Name: "paymentSubjectType", Description: "признак предмета расчета", MaxLen: 1, Cardinality: CardinalityOpt, Parents: receiptFamily(1059)},
	{Tag: 1214, Kind: KindByte, Name: "paymentMethodType", Description: "признак способа расчета", MaxLen: 1, Cardinality: CardinalityOpt, Parents: receiptFamily(1059)},
	{Tag: 1174, Kind: KindSTLV, Name: "properties", Description: "дополнительный реквизит предмета расчета", MaxLen: 512, Cardinality: CardinalityManyZero, Parents: receiptFamily(1059)},
	{Tag: 1191, Kind: KindSTLV, Name: "modifiers", Description: "скидки и надбавки на предмет расчета", MaxLen: 512, Cardinality: CardinalityManyZero, Parents: receiptFamily(1059)},
	{Tag: 1192, Kind: KindString, Name: "modifierName", Description: "наименование скидки/надбавки", MaxLen: 64, Cardinality: CardinalityOne, Parents: receiptFamily(1191)},
	{Tag: 1193, Kind: KindFVLN, Name: "modifierSum", Description: "сумма скидки/надбавки", MaxLen: 8, Cardinality: CardinalityOne, Parents: receiptFamily(1191)},

	// --- shift fields ---
	{Tag: 1110, Kind: KindVLN, Name: "documentsByShiftCount", Description: "количество кассовых чеков (БСО) за смену", MaxLen: 4, Cardinality: CardinalityOpt, Parents: receiptFamily(TagCloseShift)},
	{Tag: 1171, Kind: KindVLN, Name: "receiptsOpenedCount", Description: "количество непереданных документов за смену", MaxLen: 4, Cardinality: CardinalityOpt, Parents: receiptFamily(TagCloseShift)},

	// --- correction fields ---
	{Tag: 1173, Kind: KindByte, Name: "correctionType", Description: "тип коррекции", MaxLen: 1, Cardinality: CardinalityOne, Parents: receiptFamily(TagReceiptCorrection, TagBSOCorrection, TagFiscalReportCorrection)},
	{Tag: 1178, Kind: KindUnixTime, Name: "correctionBaseDate", Description: "дата документа основания для коррекции", MaxLen: 4, Cardinality: CardinalityOpt, Parents: receiptFamily(TagReceiptCorrection, TagBSOCorrection)},
	{Tag: 1179, Kind: KindString, Name: "correctionBaseNumber", Description: "номер документа основания для коррекции", MaxLen: 32, Cardinality: CardinalityOpt, Parents: receiptFamily(TagReceiptCorrection, TagBSOCorrection)},
	{Tag: 1016, Kind: KindSTLV, Name: "correctionReason", Description: "основание для коррекции", MaxLen: 512, Cardinality: CardinalityOpt, Parents: receiptFamily(TagReceiptCorrection, TagBSOCorrection)},
	{Tag: 1097, Kind: KindString, Name: "correctionReasonDescription", Description: "описание коррекции", MaxLen: 256, Cardinality: CardinalityOne, Parents: receiptFamily(1016)},
	{Tag: 1102, Kind: KindUnixTime, Name: "correctionDocumentDate", Description: "дата документа основания", MaxLen: 4, Cardinality: CardinalityOne, Parents: receiptFamily(1016)},

	// --- current state report fields ---
	{Tag: 1006, Kind: KindVLN, Name: "currentDocumentsCount", Description: "количество непереданных документов", MaxLen: 4, Cardinality: CardinalityOpt, Parents: receiptFamily(TagCurrentStateReport)},
	{Tag: 1111, Kind: KindByte, Name: "fiscalDriveExhaustionSign", Description: "дата окончания действия ключей фискального признака", MaxLen: 1, Cardinality: CardinalityOpt, Parents: receiptFamily(TagCurrentStateReport)},
	{Tag: 1189, Kind: KindByte, Name: "fiscalDriveReplaceRequiredSign", Description: "признак исчерпания ресурса ФН", MaxLen: 1, Cardinality: CardinalityOpt, Parents: receiptFamily(TagCurrentStateReport)},
	{Tag: 1203, Kind: KindByte, Name: "fiscalDriveMemoryExceededSign", Description: "признак переполнения памяти ФН", MaxLen: 1, Cardinality: CardinalityOpt, Parents: receiptFamily(TagCurrentStateReport)},
	{Tag: 1205, Kind: KindByte, Name: "ofdConnectionLostSign", Description: "признак превышения времени ожидания ответа ОФД", MaxLen: 1, Cardinality: CardinalityOpt, Parents: receiptFamily(TagCurrentStateReport)},

	// --- operator acknowledgment / operator-to-FN messaging ---
	{Tag: 1022, Kind: KindByte, Name: "ofdResponseCode", Description: "код ответа ОФД", MaxLen: 1, Cardinality: CardinalityOne, Parents: receiptFamily(1068)},
	{Tag: 1068, Kind: KindSTLV, Name: "messageToFn", Description: "сообщение оператора для ФН", MaxLen: 2048, Cardinality: CardinalityOpt, Parents: receiptFamily(TagOperatorAck)},
	{Tag: 1047, Kind: KindSTLV, Name: "settingParameter", Description: "параметр настройки", MaxLen: 512, Cardinality: CardinalityManyZero, Parents: receiptFamily(1068)},
	{Tag: 1015, Kind: KindU32, Name: "integerValue", Description: "значение типа целое", MaxLen: 4, Cardinality: CardinalityOne, Parents: receiptFamily(1047)},
	{Tag: 1069, Kind: KindString, Name: "settingParameterName", Description: "наименование параметра настройки", MaxLen: 64, Cardinality: CardinalityOpt, Parents: receiptFamily(1047)},
	{Tag: 1070, Kind: KindSTLV, Name: "message", Description: "сообщение оператора для кассира", MaxLen: 512, Cardinality: CardinalityManyZero, Parents: receiptFamily(TagOperatorAck, 1068)},
	{Tag: 1071, Kind: KindString, Name: "messageText", Description: "текст сообщения", MaxLen: 256, Cardinality: CardinalityOne, Parents: receiptFamily(1070)},
}
