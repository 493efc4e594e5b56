package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":         "名前",
	"email":        "メールアドレス",
	"password":     "パスワード",
	"source_text":  "単語",
	"target_text":  "訳語",
	"romanization": "読み",
	"theme_id":     "テーマID",
	"difficulty":   "難易度",
	"description":  "説明",
	"color":        "色",
	"direction":    "出題方向",
	"count":        "出題数",
	"answers":      "回答",
	"word_id":      "単語ID",
	"answer":       "回答",
	"duration_ms":  "所要時間",
}

func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe))
			return t
		})
	}
	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("hexcolor", "{0}は #RRGGBB 形式で入力してください。")

	// min / max は文字列・数値・配列でメッセージを変える
	registerBound := func(tag, str, num, list string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if err := ut.Add(tag+"-string", str, true); err != nil {
				return err
			}
			if err := ut.Add(tag+"-number", num, true); err != nil {
				return err
			}
			return ut.Add(tag+"-items", list, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := tag + "-string"
			switch fe.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
				reflect.Float32, reflect.Float64:
				key = tag + "-number"
			case reflect.Slice, reflect.Map, reflect.Array:
				key = tag + "-items"
			}
			t, _ := ut.T(key, translatedField(fe), fe.Param())
			return t
		})
	}
	registerBound("min", "{0}は{1}文字以上で入力してください。", "{0}は{1}以上で入力してください。", "{0}は{1}件以上必要です。")
	registerBound("max", "{0}は{1}文字以下で入力してください。", "{0}は{1}以下で入力してください。", "{0}は{1}件以下にしてください。")
}
